package analysis

import "context"

// MockProvider returns a fixed result. Used in development when no Face++
// credentials are configured, and in tests.
type MockProvider struct {
    Result *Result
    Err    error
}

func NewMockProvider() *MockProvider {
    return &MockProvider{
        Result: &Result{
            FaceDetected: true,
            Gender:       GenderFemale,
            BeautyMale:   65,
            BeautyFemale: 70,
            Quality:      80,
            Smiling:      60,
            Age:          22,
        },
    }
}

func (m *MockProvider) Analyze(ctx context.Context, req AnalyzeRequest) (*Result, error) {
    if req.ImagePath == "" && req.ImageURL == "" {
        return nil, ErrNoImage
    }
    if m.Err != nil {
        return nil, m.Err
    }
    return m.Result, nil
}
