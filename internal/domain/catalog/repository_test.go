package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (_m *MockCatalogRepository) Insert(ctx context.Context, entry *Entry) error {
	ret := _m.Called(ctx, entry)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Entry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCatalogRepository) Update(ctx context.Context, entryID int64, defaultCharge decimal.Decimal, active bool) error {
	ret := _m.Called(ctx, entryID, defaultCharge, active)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, decimal.Decimal, bool) error); ok {
		r0 = rf(ctx, entryID, defaultCharge, active)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCatalogRepository) FindActive(ctx context.Context) ([]Entry, error) {
	ret := _m.Called(ctx)

	var r0 []Entry
	if rf, ok := ret.Get(0).(func(context.Context) []Entry); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Entry)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCatalogRepository) FindAll(ctx context.Context) ([]Entry, error) {
	ret := _m.Called(ctx)

	var r0 []Entry
	if rf, ok := ret.Get(0).(func(context.Context) []Entry); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Entry)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
