package services_test

import (
	"context"

	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
	"github.com/stretchr/testify/mock"
)

// MockEmailRelay is a mock implementation of EmailRelay
type MockEmailRelay struct {
	mock.Mock
}

func (m *MockEmailRelay) Submit(ctx context.Context, msg web3forms.Message) (*web3forms.Response, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*web3forms.Response), args.Error(1)
}

// MockCaptchaVerifier is a mock implementation of CaptchaVerifier
type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
