package registry

import (
	"github.com/stretchr/testify/mock"

	"github.com/LeonardoGraham/tink/interfaces"
)

// MockPrimitiveRegistry mocks the interfaces.PrimitiveRegistry interface
type MockPrimitiveRegistry struct {
	mock.Mock
}

// RegisterKeyManagers mocks the RegisterKeyManagers method
func (m *MockPrimitiveRegistry) RegisterKeyManagers(family interfaces.PrimitiveFamily) error {
	args := m.Called(family)
	return args.Error(0)
}

// RegisterWrapper mocks the RegisterWrapper method
func (m *MockPrimitiveRegistry) RegisterWrapper(family interfaces.PrimitiveFamily) error {
	args := m.Called(family)
	return args.Error(0)
}
