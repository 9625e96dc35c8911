package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// AnalysisHTTPFacade talks to the external Vastu scoring service over
// HTTP/JSON. It never retries; degraded-mode handling lives in the service
// layer.
type AnalysisHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewAnalysisHTTPFacade creates a facade for the analyzer at baseURL with a
// bounded per-call timeout.
func NewAnalysisHTTPFacade(baseURL string, timeout time.Duration) *AnalysisHTTPFacade {
	return &AnalysisHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// analysisResponse is the wire shape returned by the scoring service.
type analysisResponse struct {
	Success            bool                    `json:"success"`
	VastuScore         float64                 `json:"vastu_score"`
	EnergyFlowScore    float64                 `json:"energy_flow_score"`
	RoomPlacementScore float64                 `json:"room_placement_score"`
	DirectionalScore   float64                 `json:"directional_score"`
	Recommendations    []models.Recommendation `json:"recommendations"`
}

func (resp *analysisResponse) toReport() *models.AnalysisReport {
	return &models.AnalysisReport{
		VastuScore:         resp.VastuScore,
		EnergyFlowScore:    resp.EnergyFlowScore,
		RoomPlacementScore: resp.RoomPlacementScore,
		DirectionalScore:   resp.DirectionalScore,
		Recommendations:    resp.Recommendations,
	}
}

// AnalyzeSpace submits a structured space description for scoring.
func (f *AnalysisHTTPFacade) AnalyzeSpace(ctx context.Context, desc models.SpaceDescription) (*models.AnalysisReport, error) {
	body, err := json.Marshal(desc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return f.do(req)
}

// AnalyzeImage submits a floor plan image for scoring.
func (f *AnalysisHTTPFacade) AnalyzeImage(ctx context.Context, fileName string, content []byte) (*models.AnalysisReport, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", mimetype.Detect(content).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/analyze_image", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return f.do(req)
}

func (f *AnalysisHTTPFacade) do(req *http.Request) (*models.AnalysisReport, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("analysis service unreachable", "url", req.URL.String(), "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("analysis service returned non-OK status",
			"url", req.URL.String(),
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var decoded analysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Log.Errorw("failed to decode analysis response", "error", err)
		return nil, err
	}
	if !decoded.Success {
		return nil, fmt.Errorf("analysis service reported failure")
	}

	return decoded.toReport(), nil
}
