// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
//

// Package delivery_test is a generated GoMock package.
package delivery_test

import (
	context "context"
	entities "dispatch/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CountActiveByCourier mocks base method.
func (m *MockRepository) CountActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveByCourier", ctx, courierID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveByCourier indicates an expected call of CountActiveByCourier.
func (mr *MockRepositoryMockRecorder) CountActiveByCourier(ctx, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveByCourier", reflect.TypeOf((*MockRepository)(nil).CountActiveByCourier), ctx, courierID)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, delivery)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, delivery any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, delivery)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// GetForUpdate mocks base method.
func (m *MockRepository) GetForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, id)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockRepositoryMockRecorder) GetForUpdate(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockRepository)(nil).GetForUpdate), ctx, id)
}

// GetForUpdateByOrderID mocks base method.
func (m *MockRepository) GetForUpdateByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdateByOrderID", ctx, orderID)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdateByOrderID indicates an expected call of GetForUpdateByOrderID.
func (mr *MockRepositoryMockRecorder) GetForUpdateByOrderID(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdateByOrderID", reflect.TypeOf((*MockRepository)(nil).GetForUpdateByOrderID), ctx, orderID)
}

// HasRejection mocks base method.
func (m *MockRepository) HasRejection(ctx context.Context, deliveryID, courierID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasRejection", ctx, deliveryID, courierID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasRejection indicates an expected call of HasRejection.
func (mr *MockRepositoryMockRecorder) HasRejection(ctx, deliveryID, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasRejection", reflect.TypeOf((*MockRepository)(nil).HasRejection), ctx, deliveryID, courierID)
}

// InsertRejection mocks base method.
func (m *MockRepository) InsertRejection(ctx context.Context, deliveryID, courierID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertRejection", ctx, deliveryID, courierID)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertRejection indicates an expected call of InsertRejection.
func (mr *MockRepositoryMockRecorder) InsertRejection(ctx, deliveryID, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertRejection", reflect.TypeOf((*MockRepository)(nil).InsertRejection), ctx, deliveryID, courierID)
}

// ListExpiredWaiting mocks base method.
func (m *MockRepository) ListExpiredWaiting(ctx context.Context, timeoutMinutes int64) ([]entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExpiredWaiting", ctx, timeoutMinutes)
	ret0, _ := ret[0].([]entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListExpiredWaiting indicates an expected call of ListExpiredWaiting.
func (mr *MockRepositoryMockRecorder) ListExpiredWaiting(ctx, timeoutMinutes any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExpiredWaiting", reflect.TypeOf((*MockRepository)(nil).ListExpiredWaiting), ctx, timeoutMinutes)
}

// ListForUpdate mocks base method.
func (m *MockRepository) ListForUpdate(ctx context.Context, ids []int64) ([]entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForUpdate", ctx, ids)
	ret0, _ := ret[0].([]entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListForUpdate indicates an expected call of ListForUpdate.
func (mr *MockRepositoryMockRecorder) ListForUpdate(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForUpdate", reflect.TypeOf((*MockRepository)(nil).ListForUpdate), ctx, ids)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, deliveryModify)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, deliveryModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, deliveryModify)
}

// MockOrderRepository is a mock of OrderRepository interface.
type MockOrderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOrderRepositoryMockRecorder
	isgomock struct{}
}

// MockOrderRepositoryMockRecorder is the mock recorder for MockOrderRepository.
type MockOrderRepositoryMockRecorder struct {
	mock *MockOrderRepository
}

// NewMockOrderRepository creates a new mock instance.
func NewMockOrderRepository(ctrl *gomock.Controller) *MockOrderRepository {
	mock := &MockOrderRepository{ctrl: ctrl}
	mock.recorder = &MockOrderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderRepository) EXPECT() *MockOrderRepositoryMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockOrderRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockOrderRepository)(nil).GetByID), ctx, id)
}

// SetStatus mocks base method.
func (m *MockOrderRepository) SetStatus(ctx context.Context, id int64, status entities.OrderStatusType, deliveredAt *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStatus", ctx, id, status, deliveredAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStatus indicates an expected call of SetStatus.
func (mr *MockOrderRepositoryMockRecorder) SetStatus(ctx, id, status, deliveredAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStatus", reflect.TypeOf((*MockOrderRepository)(nil).SetStatus), ctx, id, status, deliveredAt)
}

// MockWaitingInfoFactory is a mock of WaitingInfoFactory interface.
type MockWaitingInfoFactory struct {
	ctrl     *gomock.Controller
	recorder *MockWaitingInfoFactoryMockRecorder
	isgomock struct{}
}

// MockWaitingInfoFactoryMockRecorder is the mock recorder for MockWaitingInfoFactory.
type MockWaitingInfoFactoryMockRecorder struct {
	mock *MockWaitingInfoFactory
}

// NewMockWaitingInfoFactory creates a new mock instance.
func NewMockWaitingInfoFactory(ctrl *gomock.Controller) *MockWaitingInfoFactory {
	mock := &MockWaitingInfoFactory{ctrl: ctrl}
	mock.recorder = &MockWaitingInfoFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWaitingInfoFactory) EXPECT() *MockWaitingInfoFactoryMockRecorder {
	return m.recorder
}

// Compute mocks base method.
func (m *MockWaitingInfoFactory) Compute(startedAt, now time.Time, s entities.WaitingSettings) entities.WaitingInfo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compute", startedAt, now, s)
	ret0, _ := ret[0].(entities.WaitingInfo)
	return ret0
}

// Compute indicates an expected call of Compute.
func (mr *MockWaitingInfoFactoryMockRecorder) Compute(startedAt, now, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compute", reflect.TypeOf((*MockWaitingInfoFactory)(nil).Compute), startedAt, now, s)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// Arrived mocks base method.
func (m *MockNotifier) Arrived(ctx context.Context, delivery *entities.Delivery) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Arrived", ctx, delivery)
	ret0, _ := ret[0].(error)
	return ret0
}

// Arrived indicates an expected call of Arrived.
func (mr *MockNotifierMockRecorder) Arrived(ctx, delivery any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Arrived", reflect.TypeOf((*MockNotifier)(nil).Arrived), ctx, delivery)
}

// TimeoutCancelled mocks base method.
func (m *MockNotifier) TimeoutCancelled(ctx context.Context, delivery *entities.Delivery) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TimeoutCancelled", ctx, delivery)
	ret0, _ := ret[0].(error)
	return ret0
}

// TimeoutCancelled indicates an expected call of TimeoutCancelled.
func (mr *MockNotifierMockRecorder) TimeoutCancelled(ctx, delivery any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TimeoutCancelled", reflect.TypeOf((*MockNotifier)(nil).TimeoutCancelled), ctx, delivery)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
