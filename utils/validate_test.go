package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bistro/models"
)

func postBody(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeAndValidateOK(t *testing.T) {
	var req models.CustomerRequest
	errs := DecodeAndValidate(postBody(`{"name":"Amy","phone_number":"555-0100"}`), &req)

	assert.Nil(t, errs)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Amy", *req.Name)
	assert.Nil(t, req.Email)
}

func TestDecodeAndValidateMissingRequired(t *testing.T) {
	var req models.CustomerRequest
	errs := DecodeAndValidate(postBody(`{"name":"Amy"}`), &req)

	require.Len(t, errs, 1)
	assert.Equal(t, "phone_number", errs[0].Field)
	assert.Equal(t, "field required", errs[0].Error)
}

func TestDecodeAndValidateWrongType(t *testing.T) {
	var req models.CustomerRequest
	errs := DecodeAndValidate(postBody(`{"name":"Amy","phone_number":42}`), &req)

	require.Len(t, errs, 1)
	assert.Equal(t, "phone_number", errs[0].Field)
	assert.Contains(t, errs[0].Error, "expected")
}

func TestDecodeAndValidateMalformedBody(t *testing.T) {
	var req models.CustomerRequest
	errs := DecodeAndValidate(postBody(`{not json`), &req)

	require.Len(t, errs, 1)
	assert.Equal(t, "body", errs[0].Field)
}

func TestDecodeAndValidateEnumMembership(t *testing.T) {
	var req models.OrderRequest
	errs := DecodeAndValidate(postBody(`{"customer_id":1,"status":"DELIVERED"}`), &req)

	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
	assert.Contains(t, errs[0].Error, "must be one of")
}

func TestDecodeAndValidateBoundaries(t *testing.T) {
	var item models.MenuItemRequest
	errs := DecodeAndValidate(postBody(`{"active":true,"name":"Water","price":0}`), &item)
	assert.Nil(t, errs, "zero price is allowed")

	var line models.OrderItemRequest
	errs = DecodeAndValidate(postBody(`{"order_id":1,"menu_item_id":2,"quantity":0}`), &line)
	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Field)
}

func TestDecodeAndValidateCollectsAllFields(t *testing.T) {
	var req models.OrderItemRequest
	errs := DecodeAndValidate(postBody(`{}`), &req)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"order_id", "menu_item_id", "quantity"}, fields)
}
