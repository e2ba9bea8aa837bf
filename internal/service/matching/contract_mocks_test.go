// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
//

// Package matching_test is a generated GoMock package.
package matching_test

import (
	context "context"
	reflect "reflect"
	entities "ridermatch/internal/entities"
	matching "ridermatch/internal/service/matching"
	logger "ridermatch/pkg/logger"
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

// CreateAssignment mocks base method.
func (m *MockRepository) CreateAssignment(ctx context.Context, shiftID, riderID int64, assignedAt time.Time) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAssignment", ctx, shiftID, riderID, assignedAt)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAssignment indicates an expected call of CreateAssignment.
func (mr *MockRepositoryMockRecorder) CreateAssignment(ctx, shiftID, riderID, assignedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAssignment", reflect.TypeOf((*MockRepository)(nil).CreateAssignment), ctx, shiftID, riderID, assignedAt)
}

// ListActiveRiders mocks base method.
func (m *MockRepository) ListActiveRiders(ctx context.Context) ([]entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveRiders", ctx)
	ret0, _ := ret[0].([]entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveRiders indicates an expected call of ListActiveRiders.
func (mr *MockRepositoryMockRecorder) ListActiveRiders(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveRiders", reflect.TypeOf((*MockRepository)(nil).ListActiveRiders), ctx)
}

// ListAvailability mocks base method.
func (m *MockRepository) ListAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAvailability", ctx, riderID)
	ret0, _ := ret[0].([]entities.AvailabilityWindow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAvailability indicates an expected call of ListAvailability.
func (mr *MockRepositoryMockRecorder) ListAvailability(ctx, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAvailability", reflect.TypeOf((*MockRepository)(nil).ListAvailability), ctx, riderID)
}

// ListBookings mocks base method.
func (m *MockRepository) ListBookings(ctx context.Context, riderID int64) ([]entities.Booking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookings", ctx, riderID)
	ret0, _ := ret[0].([]entities.Booking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookings indicates an expected call of ListBookings.
func (mr *MockRepositoryMockRecorder) ListBookings(ctx, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookings", reflect.TypeOf((*MockRepository)(nil).ListBookings), ctx, riderID)
}

// ListOpenShifts mocks base method.
func (m *MockRepository) ListOpenShifts(ctx context.Context) ([]entities.Shift, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOpenShifts", ctx)
	ret0, _ := ret[0].([]entities.Shift)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOpenShifts indicates an expected call of ListOpenShifts.
func (mr *MockRepositoryMockRecorder) ListOpenShifts(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOpenShifts", reflect.TypeOf((*MockRepository)(nil).ListOpenShifts), ctx)
}

// ListRejectedRiders mocks base method.
func (m *MockRepository) ListRejectedRiders(ctx context.Context, shiftID int64, since time.Time) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRejectedRiders", ctx, shiftID, since)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRejectedRiders indicates an expected call of ListRejectedRiders.
func (mr *MockRepositoryMockRecorder) ListRejectedRiders(ctx, shiftID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRejectedRiders", reflect.TypeOf((*MockRepository)(nil).ListRejectedRiders), ctx, shiftID, since)
}

// SetShiftStatusFrom mocks base method.
func (m *MockRepository) SetShiftStatusFrom(ctx context.Context, shiftID int64, from, to entities.ShiftStatusType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetShiftStatusFrom", ctx, shiftID, from, to)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetShiftStatusFrom indicates an expected call of SetShiftStatusFrom.
func (mr *MockRepositoryMockRecorder) SetShiftStatusFrom(ctx, shiftID, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetShiftStatusFrom", reflect.TypeOf((*MockRepository)(nil).SetShiftStatusFrom), ctx, shiftID, from, to)
}

// MockCandidateSource is a mock of CandidateSource interface.
type MockCandidateSource struct {
	ctrl     *gomock.Controller
	recorder *MockCandidateSourceMockRecorder
	isgomock struct{}
}

// MockCandidateSourceMockRecorder is the mock recorder for MockCandidateSource.
type MockCandidateSourceMockRecorder struct {
	mock *MockCandidateSource
}

// NewMockCandidateSource creates a new mock instance.
func NewMockCandidateSource(ctrl *gomock.Controller) *MockCandidateSource {
	mock := &MockCandidateSource{ctrl: ctrl}
	mock.recorder = &MockCandidateSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCandidateSource) EXPECT() *MockCandidateSourceMockRecorder {
	return m.recorder
}

// CandidatesFor mocks base method.
func (m *MockCandidateSource) CandidatesFor(ctx context.Context, shift entities.Shift) ([]matching.Candidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CandidatesFor", ctx, shift)
	ret0, _ := ret[0].([]matching.Candidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CandidatesFor indicates an expected call of CandidatesFor.
func (mr *MockCandidateSourceMockRecorder) CandidatesFor(ctx, shift any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CandidatesFor", reflect.TypeOf((*MockCandidateSource)(nil).CandidatesFor), ctx, shift)
}

// MockRanker is a mock of Ranker interface.
type MockRanker struct {
	ctrl     *gomock.Controller
	recorder *MockRankerMockRecorder
	isgomock struct{}
}

// MockRankerMockRecorder is the mock recorder for MockRanker.
type MockRankerMockRecorder struct {
	mock *MockRanker
}

// NewMockRanker creates a new mock instance.
func NewMockRanker(ctrl *gomock.Controller) *MockRanker {
	mock := &MockRanker{ctrl: ctrl}
	mock.recorder = &MockRankerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRanker) EXPECT() *MockRankerMockRecorder {
	return m.recorder
}

// Rank mocks base method.
func (m *MockRanker) Rank(candidates []matching.Candidate) []matching.Candidate {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rank", candidates)
	ret0, _ := ret[0].([]matching.Candidate)
	return ret0
}

// Rank indicates an expected call of Rank.
func (mr *MockRankerMockRecorder) Rank(candidates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rank", reflect.TypeOf((*MockRanker)(nil).Rank), candidates)
}

// MockConflictChecker is a mock of ConflictChecker interface.
type MockConflictChecker struct {
	ctrl     *gomock.Controller
	recorder *MockConflictCheckerMockRecorder
	isgomock struct{}
}

// MockConflictCheckerMockRecorder is the mock recorder for MockConflictChecker.
type MockConflictCheckerMockRecorder struct {
	mock *MockConflictChecker
}

// NewMockConflictChecker creates a new mock instance.
func NewMockConflictChecker(ctrl *gomock.Controller) *MockConflictChecker {
	mock := &MockConflictChecker{ctrl: ctrl}
	mock.recorder = &MockConflictCheckerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConflictChecker) EXPECT() *MockConflictCheckerMockRecorder {
	return m.recorder
}

// IsFree mocks base method.
func (m *MockConflictChecker) IsFree(ctx context.Context, riderID int64, shift entities.Shift) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsFree", ctx, riderID, shift)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsFree indicates an expected call of IsFree.
func (mr *MockConflictCheckerMockRecorder) IsFree(ctx, riderID, shift any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsFree", reflect.TypeOf((*MockConflictChecker)(nil).IsFree), ctx, riderID, shift)
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

// AssignmentOffered mocks base method.
func (m *MockNotifier) AssignmentOffered(ctx context.Context, riderID int64, assignment entities.Assignment, shift entities.Shift) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignmentOffered", ctx, riderID, assignment, shift)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignmentOffered indicates an expected call of AssignmentOffered.
func (mr *MockNotifierMockRecorder) AssignmentOffered(ctx, riderID, assignment, shift any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignmentOffered", reflect.TypeOf((*MockNotifier)(nil).AssignmentOffered), ctx, riderID, assignment, shift)
}

// MockClock is a mock of Clock interface.
type MockClock struct {
	ctrl     *gomock.Controller
	recorder *MockClockMockRecorder
	isgomock struct{}
}

// MockClockMockRecorder is the mock recorder for MockClock.
type MockClockMockRecorder struct {
	mock *MockClock
}

// NewMockClock creates a new mock instance.
func NewMockClock(ctrl *gomock.Controller) *MockClock {
	mock := &MockClock{ctrl: ctrl}
	mock.recorder = &MockClockMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClock) EXPECT() *MockClockMockRecorder {
	return m.recorder
}

// Now mocks base method.
func (m *MockClock) Now() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Now")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// Now indicates an expected call of Now.
func (mr *MockClockMockRecorder) Now() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Now", reflect.TypeOf((*MockClock)(nil).Now))
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

// MockengineLogger is a mock of engineLogger interface.
type MockengineLogger struct {
	ctrl     *gomock.Controller
	recorder *MockengineLoggerMockRecorder
	isgomock struct{}
}

// MockengineLoggerMockRecorder is the mock recorder for MockengineLogger.
type MockengineLoggerMockRecorder struct {
	mock *MockengineLogger
}

// NewMockengineLogger creates a new mock instance.
func NewMockengineLogger(ctrl *gomock.Controller) *MockengineLogger {
	mock := &MockengineLogger{ctrl: ctrl}
	mock.recorder = &MockengineLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockengineLogger) EXPECT() *MockengineLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockengineLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockengineLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockengineLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockengineLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockengineLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockengineLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockengineLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockengineLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockengineLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockengineLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MockengineLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockengineLogger)(nil).With), fields...)
}
