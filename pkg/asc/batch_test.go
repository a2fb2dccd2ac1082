package asc_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

// MockClient implements asc.Client for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Apps() asc.AppsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.AppsClient)
}

func (m *MockClient) Users() asc.UsersClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.UsersClient)
}

func (m *MockClient) BundleIDs() asc.BundleIDsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.BundleIDsClient)
}

func (m *MockClient) Certificates() asc.CertificatesClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.CertificatesClient)
}

func (m *MockClient) Profiles() asc.ProfilesClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.ProfilesClient)
}

func (m *MockClient) Devices() asc.DevicesClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(asc.DevicesClient)
}

func (m *MockClient) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

// MockDevicesClient implements asc.DevicesClient for testing.
type MockDevicesClient struct {
	mock.Mock
}

func (m *MockDevicesClient) List(ctx context.Context, query *asc.DeviceQuery) (*asc.DevicesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*asc.DevicesResponse), args.Error(1)
}

func (m *MockDevicesClient) ListByURL(ctx context.Context, pageURL string) (*asc.DevicesResponse, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*asc.DevicesResponse), args.Error(1)
}

func (m *MockDevicesClient) Get(ctx context.Context, id string) (*asc.DeviceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*asc.DeviceResponse), args.Error(1)
}

func (m *MockDevicesClient) Register(ctx context.Context, request *asc.DeviceCreateRequest) (*asc.DeviceResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*asc.DeviceResponse), args.Error(1)
}

func (m *MockDevicesClient) Update(ctx context.Context, id string, request *asc.DeviceUpdateRequest) (*asc.DeviceResponse, error) {
	args := m.Called(ctx, id, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*asc.DeviceResponse), args.Error(1)
}

func deviceResponse(id string) *asc.DeviceResponse {
	return &asc.DeviceResponse{Data: asc.Device{Type: asc.ResourceTypeDevices, ID: id}}
}

func TestBatchExecutor_ResultsInInputOrder(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockDevices := &MockDevicesClient{}
	mockClient.On("Devices").Return(mockDevices)

	var operations []asc.BatchOperation

	for i := range 10 {
		request := asc.NewDeviceCreateRequest(fmt.Sprintf("device-%d", i), asc.BundleIDPlatformIOS, fmt.Sprintf("udid-%d", i))
		mockDevices.On("Register", mock.Anything, request).Return(deviceResponse(fmt.Sprintf("id-%d", i)), nil)

		operations = append(operations, asc.BatchOperation{
			ID:       fmt.Sprintf("op-%d", i),
			Type:     asc.OperationCreate,
			Resource: asc.BatchResourceDevice,
			Data:     request,
		})
	}

	executor := asc.NewBatchExecutor(mockClient, 3)

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 10)

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("op-%d", i), result.ID)
		assert.True(t, result.Success)
		require.NoError(t, result.Error)

		device, ok := result.Data.(*asc.DeviceResponse)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("id-%d", i), device.Data.ID)
	}

	mockDevices.AssertExpectations(t)
}

func TestBatchExecutor_Failures(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockDevices := &MockDevicesClient{}
	mockClient.On("Devices").Return(mockDevices)

	notFound := &asc.ServerError{StatusCode: 404, Errors: []asc.ErrorEntry{{Status: "404", Code: "NOT_FOUND"}}}
	mockDevices.On("Get", mock.Anything, "missing").Return(nil, notFound)

	operations := asc.NewBatchBuilder().
		AddGet("get-missing", asc.BatchResourceDevice, "missing").
		AddOperation(asc.BatchOperation{ID: "bad-type", Type: asc.OperationDelete, Resource: asc.BatchResourceDevice, Data: "x"}).
		AddOperation(asc.BatchOperation{ID: "bad-resource", Type: asc.OperationGet, Resource: "widget", Data: "x"}).
		AddOperation(asc.BatchOperation{ID: "bad-data", Type: asc.OperationCreate, Resource: asc.BatchResourceDevice, Data: "x"}).
		Build()

	results, err := asc.NewBatchExecutor(mockClient, 0).Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.False(t, results[0].Success)
	assert.True(t, asc.IsNotFound(results[0].Error))
	require.ErrorIs(t, results[1].Error, asc.ErrUnsupportedOperationType)
	require.ErrorIs(t, results[2].Error, asc.ErrUnsupportedResourceType)
	require.ErrorIs(t, results[3].Error, asc.ErrInvalidDataType)
}

func TestBatchExecutor_RunAndCallback(t *testing.T) {
	t.Parallel()

	mockClient := &MockClient{}
	mockClient.On("Token", mock.Anything).Return("token-value", nil)

	var callbacks atomic.Int32

	operation := asc.BatchOperation{
		ID: "token",
		Run: func(ctx context.Context, client asc.Client) (interface{}, error) {
			return client.Token(ctx)
		},
		Callback: func(result *asc.BatchResult) {
			callbacks.Add(1)
		},
	}

	results, err := asc.NewBatchExecutor(mockClient, 1).Execute(context.Background(), []asc.BatchOperation{operation})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Success)
	assert.Equal(t, "token-value", results[0].Data)
	assert.Equal(t, int32(1), callbacks.Load())
	mockClient.AssertExpectations(t)
}

func TestBatchExecutor_Timeout(t *testing.T) {
	t.Parallel()

	executor := asc.NewBatchExecutor(&MockClient{}, 2)
	executor.SetTimeout(20 * time.Millisecond)

	operation := asc.BatchOperation{
		ID: "slow",
		Run: func(ctx context.Context, _ asc.Client) (interface{}, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		},
	}

	results, err := executor.Execute(context.Background(), []asc.BatchOperation{operation})
	require.NoError(t, err)
	require.ErrorIs(t, results[0].Error, context.DeadlineExceeded)
	assert.False(t, results[0].Success)
}

func TestBatchExecutor_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	var (
		running atomic.Int32
		peak    atomic.Int32
	)

	operations := make([]asc.BatchOperation, 12)
	for i := range operations {
		operations[i] = asc.BatchOperation{
			ID: fmt.Sprintf("op-%d", i),
			Run: func(context.Context, asc.Client) (interface{}, error) {
				current := running.Add(1)
				defer running.Add(-1)

				for {
					old := peak.Load()
					if current <= old || peak.CompareAndSwap(old, current) {
						break
					}
				}

				time.Sleep(5 * time.Millisecond)

				return nil, nil
			},
		}
	}

	_, err := asc.NewBatchExecutor(&MockClient{}, 2).Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
