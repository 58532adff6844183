package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockP4Runner is a testify mock for the P4Runner type.
type MockP4Runner struct {
	mock.Mock
}

var _ P4Runner = &MockP4Runner{} // Compile-time check

// Run implements the P4Runner interface.
func (m *MockP4Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	mockArgs := make([]interface{}, 0, len(args)+1)
	mockArgs = append(mockArgs, ctx)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// DescribeSummary implements the P4Runner interface.
func (m *MockP4Runner) DescribeSummary(ctx context.Context, change string) ([]byte, error) {
	ret := m.Called(ctx, change)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// Opened implements the P4Runner interface.
func (m *MockP4Runner) Opened(ctx context.Context) ([]byte, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// Print implements the P4Runner interface.
func (m *MockP4Runner) Print(ctx context.Context, spec string) ([]byte, error) {
	ret := m.Called(ctx, spec)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// Diff implements the P4Runner interface.
func (m *MockP4Runner) Diff(ctx context.Context, depotPath string) ([]byte, error) {
	ret := m.Called(ctx, depotPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// Diff2 implements the P4Runner interface.
func (m *MockP4Runner) Diff2(ctx context.Context, specA, specB string) ([]byte, error) {
	ret := m.Called(ctx, specA, specB)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// Where implements the P4Runner interface.
func (m *MockP4Runner) Where(ctx context.Context, depotPath string) (string, error) {
	ret := m.Called(ctx, depotPath)
	path, _ := ret.Get(0).(string)
	return path, ret.Error(1)
}
