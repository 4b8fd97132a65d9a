package analysis

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "mime/multipart"
    "net/http"
    "os"
    "time"
)

const (
    defaultDetectURL = "https://api-cn.faceplusplus.com/facepp/v3/detect"
    defaultTimeout   = 10 * time.Second

    // Attributes we ask the detect endpoint to return.
    returnAttributes = "beauty,gender,smiling,facequality,age"
)

// FacePPProvider calls the Face++ detect API.
type FacePPProvider struct {
    apiKey    string
    apiSecret string
    detectURL string
    client    *http.Client
}

// NewFacePPProvider creates a Face++ backed provider. Both credentials are
// required; selecting the mock provider is the way to run without them.
func NewFacePPProvider(apiKey, apiSecret, detectURL string, timeout time.Duration) (*FacePPProvider, error) {
    if apiKey == "" || apiSecret == "" {
        return nil, fmt.Errorf("face++ api key and secret are required")
    }
    if detectURL == "" {
        detectURL = defaultDetectURL
    }
    if timeout <= 0 {
        timeout = defaultTimeout
    }

    return &FacePPProvider{
        apiKey:    apiKey,
        apiSecret: apiSecret,
        detectURL: detectURL,
        client:    &http.Client{Timeout: timeout},
    }, nil
}

// attributeMidpoint substitutes for score attributes the detect endpoint
// omits, so a sparse response degrades to neutral instead of zero.
const attributeMidpoint = 50.0

// Score fields are pointers to distinguish an absent attribute from a
// genuine zero.
type faceppResponse struct {
    ErrorMessage string `json:"error_message"`
    Faces        []struct {
        Attributes struct {
            Beauty struct {
                MaleScore   *float64 `json:"male_score"`
                FemaleScore *float64 `json:"female_score"`
            } `json:"beauty"`
            Gender struct {
                Value string `json:"value"`
            } `json:"gender"`
            Smiling struct {
                Value *float64 `json:"value"`
            } `json:"smiling"`
            FaceQuality struct {
                Value *float64 `json:"value"`
            } `json:"facequality"`
            Age struct {
                Value int `json:"value"`
            } `json:"age"`
        } `json:"attributes"`
    } `json:"faces"`
}

func scoreOrMidpoint(v *float64) float64 {
    if v == nil {
        return attributeMidpoint
    }
    return *v
}

func (p *FacePPProvider) Analyze(ctx context.Context, req AnalyzeRequest) (*Result, error) {
    if req.ImagePath == "" && req.ImageURL == "" {
        return nil, ErrNoImage
    }

    body := &bytes.Buffer{}
    form := multipart.NewWriter(body)
    form.WriteField("api_key", p.apiKey)
    form.WriteField("api_secret", p.apiSecret)
    form.WriteField("return_attributes", returnAttributes)

    if req.ImagePath != "" {
        file, err := os.Open(req.ImagePath)
        if err != nil {
            RecordAnalyzeResult("open_error")
            return nil, fmt.Errorf("failed to open image: %w", err)
        }
        part, err := form.CreateFormFile("image_file", req.ImagePath)
        if err == nil {
            _, err = io.Copy(part, file)
        }
        file.Close()
        if err != nil {
            return nil, fmt.Errorf("failed to build request body: %w", err)
        }
    } else {
        form.WriteField("image_url", req.ImageURL)
    }

    if err := form.Close(); err != nil {
        return nil, fmt.Errorf("failed to finalize request body: %w", err)
    }

    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.detectURL, body)
    if err != nil {
        return nil, err
    }
    httpReq.Header.Set("Content-Type", form.FormDataContentType())

    resp, err := p.client.Do(httpReq)
    if err != nil {
        RecordAnalyzeResult("transport_error")
        return nil, fmt.Errorf("face++ request failed: %w", err)
    }
    defer resp.Body.Close()

    var parsed faceppResponse
    if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
        RecordAnalyzeResult("decode_error")
        return nil, fmt.Errorf("failed to decode face++ response: %w", err)
    }

    if parsed.ErrorMessage != "" {
        RecordAnalyzeResult("api_error")
        return nil, fmt.Errorf("face++ error: %s", parsed.ErrorMessage)
    }
    if resp.StatusCode != http.StatusOK {
        RecordAnalyzeResult("api_error")
        return nil, fmt.Errorf("face++ returned status %d", resp.StatusCode)
    }

    if len(parsed.Faces) == 0 {
        RecordAnalyzeResult("no_face")
        return &Result{FaceDetected: false}, nil
    }

    // Photos are expected to contain a single person; take the first face.
    attrs := parsed.Faces[0].Attributes
    RecordAnalyzeResult("ok")

    return &Result{
        FaceDetected: true,
        Gender:       GenderTag(attrs.Gender.Value),
        BeautyMale:   scoreOrMidpoint(attrs.Beauty.MaleScore),
        BeautyFemale: scoreOrMidpoint(attrs.Beauty.FemaleScore),
        Quality:      scoreOrMidpoint(attrs.FaceQuality.Value),
        Smiling:      scoreOrMidpoint(attrs.Smiling.Value),
        Age:          attrs.Age.Value,
    }, nil
}
