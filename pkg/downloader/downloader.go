package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Changed to var to allow overriding for testing
var (
	huggingFaceAPI = "https://huggingface.co/api/models/"
	huggingFaceCDN = "https://huggingface.co/" // Base URL for direct file downloads
)

func init() {
	if apiURL := os.Getenv("HUGGINGFACE_API_URL"); apiURL != "" {
		huggingFaceAPI = apiURL
	}
	if cdnURL := os.Getenv("HUGGINGFACE_CDN_URL"); cdnURL != "" {
		huggingFaceCDN = cdnURL
	}
}

// Scheme prefixes model references that are fetched from the HuggingFace Hub
// instead of read from disk.
const Scheme = "hf://"

// Reference names a model repository on the Hub and, optionally, one ONNX
// file inside it.
type Reference struct {
	ModelID string // "<org>/<name>"
	File    string // path inside the repository, empty for the first .onnx file
}

// ParseReference parses "hf://<org>/<name>[/<path/to/file.onnx>]".
func ParseReference(ref string) (Reference, error) {
	rest, ok := strings.CutPrefix(ref, Scheme)
	if !ok {
		return Reference{}, fmt.Errorf("model reference %q does not start with %s", ref, Scheme)
	}
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Reference{}, fmt.Errorf("model reference %q must be %s<org>/<name>[/<file>]", ref, Scheme)
	}
	r := Reference{ModelID: parts[0] + "/" + parts[1]}
	if len(parts) == 3 {
		r.File = parts[2]
	}
	return r, nil
}

// ModelSource defines the interface for a model source, such as HuggingFace.
type ModelSource interface {
	// DownloadModel downloads the referenced ONNX file, and any external
	// data files stored next to it, into destination.
	DownloadModel(ctx context.Context, ref Reference, destination string) (*DownloadResult, error)
}

// DownloadResult contains the paths to the downloaded model files.
type DownloadResult struct {
	ModelPath         string
	ExternalDataPaths []string
}

// Downloader handles the overall download process using a ModelSource.
type Downloader struct {
	source ModelSource
}

// NewDownloader creates a new Downloader with the given ModelSource.
func NewDownloader(source ModelSource) *Downloader {
	return &Downloader{source: source}
}

// Download orchestrates the download of a model and its associated files
// using the configured ModelSource.
func (d *Downloader) Download(ctx context.Context, ref Reference, destination string) (*DownloadResult, error) {
	return d.source.DownloadModel(ctx, ref, destination)
}

// Resolve turns a model reference into a local path. Plain paths are
// returned unchanged; hf:// references are downloaded below cacheDir first.
func (d *Downloader) Resolve(ctx context.Context, modelRef, cacheDir string) (string, error) {
	if !strings.HasPrefix(modelRef, Scheme) {
		return modelRef, nil
	}
	ref, err := ParseReference(modelRef)
	if err != nil {
		return "", err
	}
	result, err := d.Download(ctx, ref, filepath.Join(cacheDir, filepath.FromSlash(ref.ModelID)))
	if err != nil {
		return "", err
	}
	return result.ModelPath, nil
}

// copyFile copies content from a source reader to a destination writer.
func copyFile(src io.Reader, dst io.Writer) (int64, error) {
	return io.Copy(dst, src)
}

// HuggingFaceSource implements the ModelSource interface for HuggingFace Hub.
type HuggingFaceSource struct {
	client *http.Client
	apiKey string
	logger *slog.Logger
}

// NewHuggingFaceSource creates a new HuggingFaceSource. apiKey may be empty
// for public repositories.
func NewHuggingFaceSource(apiKey string, logger *slog.Logger) *HuggingFaceSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &HuggingFaceSource{
		client: &http.Client{},
		apiKey: apiKey,
		logger: logger,
	}
}

// HuggingFaceModelInfo represents the structure of the JSON response from HuggingFace API.
type HuggingFaceModelInfo struct {
	ModelID string `json:"modelId"`
	// Other fields might be present, but we only care about siblings for now
	Siblings []struct {
		RPath string `json:"rfilename"` // Relative path of the file
	} `json:"siblings"`
}

func (h *HuggingFaceSource) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}
	return h.client.Do(req)
}

// downloadFile downloads a single file from a URL to a local path.
func (h *HuggingFaceSource) downloadFile(ctx context.Context, url, filePath string) error {
	// Create the directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	resp, err := h.get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to download file from %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			h.logger.Warn("failed to close response body", "url", url, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: status code %s", url, resp.Status)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}

	if _, err := copyFile(resp.Body, out); err != nil {
		if cerr := out.Close(); cerr != nil {
			h.logger.Warn("failed to close file after copy error", "path", filePath, "error", cerr)
		}
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", filePath, err)
	}
	return nil
}

func (h *HuggingFaceSource) fileURL(modelID, rPath string) string {
	downloadURL := huggingFaceCDN + modelID + "/resolve/main/" + rPath // Assuming 'main' branch
	// Ensure the URL is correctly formed for HuggingFace CDN
	return strings.ReplaceAll(downloadURL, "//resolve/main/", "/resolve/main/")
}

// DownloadModel downloads the referenced ONNX model from HuggingFace Hub.
func (h *HuggingFaceSource) DownloadModel(ctx context.Context, ref Reference, destination string) (result *DownloadResult, err error) {
	apiURL := huggingFaceAPI + ref.ModelID

	resp, err := h.get(ctx, apiURL)
	if err != nil {
		err = fmt.Errorf("failed to fetch model info from HuggingFace API: %w", err)
		return
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil { // Only assign if no other error occurred
			err = fmt.Errorf("failed to close response body for %s: %w", apiURL, cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("HuggingFace API returned non-OK status: %s", resp.Status)
		return
	}

	var modelInfo HuggingFaceModelInfo
	if err = json.NewDecoder(resp.Body).Decode(&modelInfo); err != nil {
		err = fmt.Errorf("failed to decode HuggingFace API response: %w", err)
		return
	}

	files := make([]string, 0, len(modelInfo.Siblings))
	for _, sibling := range modelInfo.Siblings {
		files = append(files, sibling.RPath)
	}

	modelFile, err := selectModelFile(ref, files)
	if err != nil {
		return
	}

	modelPath := filepath.Join(destination, path.Base(modelFile))
	h.logger.Debug("downloading model", "model", ref.ModelID, "file", modelFile, "destination", modelPath)
	if err = h.downloadFile(ctx, h.fileURL(ref.ModelID, modelFile), modelPath); err != nil {
		err = fmt.Errorf("failed to download ONNX model %s: %w", modelFile, err)
		return
	}

	var dataPaths []string
	for _, rPath := range externalDataFiles(modelFile, files) {
		dataPath := filepath.Join(destination, path.Base(rPath))
		if err = h.downloadFile(ctx, h.fileURL(ref.ModelID, rPath), dataPath); err != nil {
			err = fmt.Errorf("failed to download external data %s: %w", rPath, err)
			return
		}
		dataPaths = append(dataPaths, dataPath)
	}

	result = &DownloadResult{
		ModelPath:         modelPath,
		ExternalDataPaths: dataPaths,
	}
	return
}

// selectModelFile picks the requested file, or the first .onnx file listed.
func selectModelFile(ref Reference, files []string) (string, error) {
	for _, rPath := range files {
		if ref.File != "" {
			if rPath == ref.File {
				return rPath, nil
			}
			continue
		}
		if strings.HasSuffix(rPath, ".onnx") {
			return rPath, nil
		}
	}
	if ref.File != "" {
		return "", fmt.Errorf("file %s not found for model ID: %s", ref.File, ref.ModelID)
	}
	return "", fmt.Errorf("no ONNX model found for model ID: %s", ref.ModelID)
}

// externalDataFiles returns the tensor data files stored in the same
// directory as modelFile.
func externalDataFiles(modelFile string, files []string) []string {
	dir := path.Dir(modelFile)
	var data []string
	for _, rPath := range files {
		if path.Dir(rPath) != dir {
			continue
		}
		if strings.HasSuffix(rPath, ".onnx_data") || strings.HasSuffix(rPath, ".onnx.data") {
			data = append(data, rPath)
		}
	}
	return data
}
