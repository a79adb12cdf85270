package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (_m *MockLedgerRepository) AddServiceLine(ctx context.Context, line *ServiceLine) error {
	ret := _m.Called(ctx, line)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *ServiceLine) error); ok {
		r0 = rf(ctx, line)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockLedgerRepository) AddPayment(ctx context.Context, payment *Payment) error {
	ret := _m.Called(ctx, payment)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Payment) error); ok {
		r0 = rf(ctx, payment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockLedgerRepository) FindServiceLines(ctx context.Context, customerID int64) ([]ServiceLine, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []ServiceLine
	if rf, ok := ret.Get(0).(func(context.Context, int64) []ServiceLine); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]ServiceLine)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLedgerRepository) FindPayments(ctx context.Context, customerID int64) ([]Payment, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []Payment
	if rf, ok := ret.Get(0).(func(context.Context, int64) []Payment); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Payment)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLedgerRepository) DeleteServiceLine(ctx context.Context, lineID int64) error {
	ret := _m.Called(ctx, lineID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, lineID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockLedgerRepository) DeleteServiceLines(ctx context.Context, customerID int64, lineIDs []int64) (int64, error) {
	ret := _m.Called(ctx, customerID, lineIDs)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64, []int64) int64); ok {
		r0 = rf(ctx, customerID, lineIDs)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, []int64) error); ok {
		r1 = rf(ctx, customerID, lineIDs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockCustomerDirectory struct {
	mock.Mock
}

func (_m *MockCustomerDirectory) EnsureExists(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
