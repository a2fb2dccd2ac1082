package asc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType  = errors.New("unsupported resource type")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidDataType          = errors.New("invalid data type for operation")
)

// Operation types.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationGet    = "get"
)

// Batch resource names.
const (
	BatchResourceBundleID    = "bundle_id"
	BatchResourceCertificate = "certificate"
	BatchResourceDevice      = "device"
	BatchResourceProfile     = "profile"
	BatchResourceUser        = "user"
)

// DefaultBatchConcurrency is used when NewBatchExecutor is given a
// non-positive concurrency.
const DefaultBatchConcurrency = 5

// UpdateDataWrapper pairs an update payload with the id it addresses.
type UpdateDataWrapper[T any] struct {
	ID      string
	Request *T
}

// BatchOperation represents a single operation in a batch. When Run is set it
// is called directly and Type, Resource and Data are ignored.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "get"
	Resource string // "device", "bundle_id", "profile", ...
	Data     interface{}
	Run      func(ctx context.Context, client Client) (interface{}, error)
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs operations against a Client with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
	}
}

// SetTimeout bounds each operation. Zero disables the per-operation deadline.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are in input order; failures
// are reported per result, never as the returned error.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results[index] = BatchResult{ID: operation.ID, Error: ctx.Err()}

				return
			}

			defer func() { <-semaphore }()

			opCtx := ctx

			if b.timeout > 0 {
				var cancel context.CancelFunc

				opCtx, cancel = context.WithTimeout(ctx, b.timeout)
				defer cancel()
			}

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// operationFuncs maps an operation type to its implementation.
type operationFuncs map[string]func() (interface{}, error)

func handleOperation(operation BatchOperation, funcs operationFuncs) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	run, ok := funcs[operation.Type]
	if !ok {
		result.Error = fmt.Errorf("%w: %s %s", ErrUnsupportedOperationType, operation.Resource, operation.Type)

		return result
	}

	data, err := run()
	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	if operation.Run != nil {
		data, err := operation.Run(ctx, b.client)

		return &BatchResult{ID: operation.ID, Success: err == nil, Data: data, Error: err}
	}

	switch operation.Resource {
	case BatchResourceDevice:
		return b.executeDeviceOperation(ctx, operation)
	case BatchResourceBundleID:
		return b.executeBundleIDOperation(ctx, operation)
	case BatchResourceCertificate:
		return b.executeCertificateOperation(ctx, operation)
	case BatchResourceProfile:
		return b.executeProfileOperation(ctx, operation)
	case BatchResourceUser:
		return b.executeUserOperation(ctx, operation)
	default:
		return &BatchResult{
			ID:    operation.ID,
			Error: fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource),
		}
	}
}

func invalidData(operation BatchOperation) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidDataType, operation.Resource, operation.Type)
}

// getByID builds the "get" handler shared by every resource.
func getByID[T any](ctx context.Context, operation BatchOperation, get func(context.Context, string) (*T, error)) func() (interface{}, error) {
	return func() (interface{}, error) {
		if id, ok := operation.Data.(string); ok {
			return get(ctx, id)
		}

		return nil, invalidData(operation)
	}
}

// deleteByID builds a handler for operations that return no payload.
func deleteByID(ctx context.Context, operation BatchOperation, remove func(context.Context, string) error) func() (interface{}, error) {
	return func() (interface{}, error) {
		if id, ok := operation.Data.(string); ok {
			return nil, remove(ctx, id)
		}

		return nil, invalidData(operation)
	}
}

func (b *BatchExecutor) executeDeviceOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	devices := b.client.Devices()

	return handleOperation(operation, operationFuncs{
		OperationCreate: func() (interface{}, error) {
			if req, ok := operation.Data.(*DeviceCreateRequest); ok {
				return devices.Register(ctx, req)
			}

			return nil, invalidData(operation)
		},
		OperationUpdate: func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[DeviceUpdateRequest]); ok {
				return devices.Update(ctx, data.ID, data.Request)
			}

			return nil, invalidData(operation)
		},
		OperationGet: getByID(ctx, operation, devices.Get),
	})
}

func (b *BatchExecutor) executeBundleIDOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	bundleIDs := b.client.BundleIDs()

	return handleOperation(operation, operationFuncs{
		OperationCreate: func() (interface{}, error) {
			if req, ok := operation.Data.(*BundleIDCreateRequest); ok {
				return bundleIDs.Register(ctx, req)
			}

			return nil, invalidData(operation)
		},
		OperationDelete: deleteByID(ctx, operation, bundleIDs.Delete),
		OperationGet:    getByID(ctx, operation, bundleIDs.Get),
	})
}

func (b *BatchExecutor) executeCertificateOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	certificates := b.client.Certificates()

	return handleOperation(operation, operationFuncs{
		OperationCreate: func() (interface{}, error) {
			if req, ok := operation.Data.(*CertificateCreateRequest); ok {
				return certificates.Create(ctx, req)
			}

			return nil, invalidData(operation)
		},
		OperationDelete: deleteByID(ctx, operation, certificates.Revoke),
		OperationGet:    getByID(ctx, operation, certificates.Get),
	})
}

func (b *BatchExecutor) executeProfileOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	profiles := b.client.Profiles()

	return handleOperation(operation, operationFuncs{
		OperationCreate: func() (interface{}, error) {
			if req, ok := operation.Data.(*ProfileCreateRequest); ok {
				return profiles.Create(ctx, req)
			}

			return nil, invalidData(operation)
		},
		OperationDelete: deleteByID(ctx, operation, profiles.Delete),
		OperationGet:    getByID(ctx, operation, profiles.Get),
	})
}

func (b *BatchExecutor) executeUserOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	users := b.client.Users()

	return handleOperation(operation, operationFuncs{
		OperationUpdate: func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[UserUpdateRequest]); ok {
				return users.Modify(ctx, data.ID, data.Request)
			}

			return nil, invalidData(operation)
		},
		OperationDelete: deleteByID(ctx, operation, users.Remove),
		OperationGet:    getByID(ctx, operation, users.Get),
	})
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddRegisterDevice adds a device registration.
func (b *BatchBuilder) AddRegisterDevice(id string, request *DeviceCreateRequest) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     OperationCreate,
		Resource: BatchResourceDevice,
		Data:     request,
	})
}

// AddUpdateDevice adds a device update.
func (b *BatchBuilder) AddUpdateDevice(id, deviceID string, request *DeviceUpdateRequest) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     OperationUpdate,
		Resource: BatchResourceDevice,
		Data:     &UpdateDataWrapper[DeviceUpdateRequest]{ID: deviceID, Request: request},
	})
}

// AddRegisterBundleID adds a bundle ID registration.
func (b *BatchBuilder) AddRegisterBundleID(id string, request *BundleIDCreateRequest) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     OperationCreate,
		Resource: BatchResourceBundleID,
		Data:     request,
	})
}

// AddDeleteProfile adds a profile deletion.
func (b *BatchBuilder) AddDeleteProfile(id, profileID string) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     OperationDelete,
		Resource: BatchResourceProfile,
		Data:     profileID,
	})
}

// AddGet adds a read of any supported resource.
func (b *BatchBuilder) AddGet(id, resource, resourceID string) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     OperationGet,
		Resource: resource,
		Data:     resourceID,
	})
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
