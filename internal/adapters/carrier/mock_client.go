package carrier

import (
	"context"
	"fmt"

	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/ports"
)

// MockClient is a canned-response carrier for tests.
type MockClient struct {
	CreateResult ports.CreateResult
	CreateErr    error
	QueryResults map[ports.KeyType]ports.QueryResult
	QueryErr     error

	CreateCalls [][]*domain.FieldSet
	QueryCalls  []ports.KeyType
}

func (m *MockClient) CreateShipment(
	ctx context.Context,
	creds ports.Credentials,
	language string,
	orders []*domain.FieldSet,
) (ports.CreateResult, error) {
	m.CreateCalls = append(m.CreateCalls, orders)
	if m.CreateErr != nil {
		return ports.CreateResult{}, m.CreateErr
	}
	return m.CreateResult, nil
}

func (m *MockClient) QueryShipment(
	ctx context.Context,
	creds ports.Credentials,
	language string,
	keys []string,
	keyType ports.KeyType,
	addHistoricalData bool,
	onlyTracking bool,
) (ports.QueryResult, error) {
	m.QueryCalls = append(m.QueryCalls, keyType)
	if m.QueryErr != nil {
		return ports.QueryResult{}, m.QueryErr
	}
	r, ok := m.QueryResults[keyType]
	if !ok {
		return ports.QueryResult{}, fmt.Errorf("no canned result for keyType %d", keyType)
	}
	return r, nil
}
