package dto

import (
	"testing"
	"time"

	"consultancy-ledger/internal/domain/customer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const validRequest = "Valid request"

func TestCreateCustomerRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateCustomerRequest
		wantErr bool
	}{
		{validRequest, CreateCustomerRequest{Name: "Ravi Kumar", Mobile: "9876543210"}, false},
		{"Empty name", CreateCustomerRequest{Name: "", Mobile: "9876543210"}, true},
		{"Blank name", CreateCustomerRequest{Name: "   ", Mobile: "9876543210"}, true},
		{"Empty mobile", CreateCustomerRequest{Name: "Ravi Kumar", Mobile: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerRequestToParams(t *testing.T) {
	t.Run("parses loan amount and date", func(t *testing.T) {
		req := CreateCustomerRequest{
			Name:         "Ravi Kumar",
			Mobile:       "9876543210",
			LoanAmount:   "50000.50",
			CustomerDate: "2024-04-01",
		}

		params, err := req.ToParams()

		assert.NoError(t, err)
		assert.True(t, params.LoanAmount.Equal(decimal.RequireFromString("50000.50")))
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), params.CustomerDate)
	})

	t.Run("empty loan amount means zero", func(t *testing.T) {
		req := CreateCustomerRequest{Name: "Ravi", Mobile: "9876543210"}

		params, err := req.ToParams()

		assert.NoError(t, err)
		assert.True(t, params.LoanAmount.IsZero())
		assert.True(t, params.CustomerDate.IsZero())
	})

	t.Run("rejects malformed loan amount", func(t *testing.T) {
		req := CreateCustomerRequest{Name: "Ravi", Mobile: "9876543210", LoanAmount: "fifty"}

		_, err := req.ToParams()

		assert.Error(t, err)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		req := CreateCustomerRequest{Name: "Ravi", Mobile: "9876543210", CustomerDate: "01/04/2024"}

		_, err := req.ToParams()

		assert.Error(t, err)
	})
}

func TestNewCustomerResponse(t *testing.T) {
	cust := &customer.Customer{
		CustomerID:   7,
		Name:         "Ravi Kumar",
		Mobile:       "9876543210",
		LoanAmount:   decimal.RequireFromString("50000.5"),
		CustomerDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := NewCustomerResponse(cust)

	assert.Equal(t, "7", resp.CustomerID)
	assert.Equal(t, "50000.50", resp.LoanAmount)
	assert.Equal(t, "2024-04-01", resp.CustomerDate)
}

func TestNewCustomerResponseNil(t *testing.T) {
	resp := NewCustomerResponse(nil)
	assert.Equal(t, CustomerResponse{}, resp)
}
