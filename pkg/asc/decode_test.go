package asc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

const deviceBody = `{
  "data": {
    "type": "devices",
    "id": "ABC123",
    "attributes": {
      "addedDate": "2022-12-10T12:02:45.000+00:00",
      "name": "Test iPhone",
      "deviceClass": "IPHONE",
      "model": "iPhone 14",
      "udid": "00008110-000A1C2E3E91801E",
      "platform": "IOS",
      "status": "ENABLED"
    },
    "links": {"self": "https://api.appstoreconnect.apple.com/v1/devices/ABC123"}
  },
  "links": {"self": "https://api.appstoreconnect.apple.com/v1/devices/ABC123"}
}`

func TestDecode_Success(t *testing.T) {
	t.Parallel()

	for _, status := range []int{200, 201, 299} {
		resp, err := asc.Decode[asc.DeviceResponse](status, []byte(deviceBody))
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, "ABC123", resp.Data.ID)
		assert.Equal(t, asc.ResourceTypeDevices, resp.Data.Type)
		assert.Equal(t, asc.DeviceStatusEnabled, resp.Data.Attributes.Status)
		assert.Equal(t, 2022, resp.Data.Attributes.AddedDate.Year())
		require.NotNil(t, resp.Data.Attributes.Model)
		assert.Equal(t, "iPhone 14", *resp.Data.Attributes.Model)
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecode_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantServer bool
		wantDecode bool
		wantCodes  []string
	}{
		{
			name:       "single error entry",
			status:     404,
			body:       `{"errors":[{"status":"404","code":"NOT_FOUND","title":"The specified resource does not exist","detail":"There is no resource of type 'devices' with id 'x'"}]}`,
			wantServer: true,
			wantCodes:  []string{"NOT_FOUND"},
		},
		{
			name:       "entries kept in order",
			status:     409,
			body:       `{"errors":[{"status":"409","code":"ENTITY_ERROR.ATTRIBUTE.INVALID","title":"a","detail":"b"},{"status":"409","code":"ENTITY_ERROR.RELATIONSHIP.INVALID","title":"c","detail":"d"}]}`,
			wantServer: true,
			wantCodes:  []string{"ENTITY_ERROR.ATTRIBUTE.INVALID", "ENTITY_ERROR.RELATIONSHIP.INVALID"},
		},
		{
			name:       "redirect status is not success",
			status:     300,
			body:       `{"errors":[{"status":"300","code":"MULTIPLE","title":"t","detail":"d"}]}`,
			wantServer: true,
			wantCodes:  []string{"MULTIPLE"},
		},
		{
			name:       "html error page",
			status:     502,
			body:       `<html><body>Bad Gateway</body></html>`,
			wantDecode: true,
		},
		{
			name:       "missing errors member",
			status:     500,
			body:       `{"message":"boom"}`,
			wantDecode: true,
		},
		{
			name:       "empty errors list",
			status:     500,
			body:       `{"errors":[]}`,
			wantDecode: true,
		},
		{
			name:       "empty body",
			status:     503,
			body:       ``,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := asc.Decode[asc.DeviceResponse](tt.status, []byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, resp)

			if tt.wantServer {
				serverErr, ok := asc.AsServerError(err)
				require.True(t, ok)
				assert.Equal(t, tt.status, serverErr.StatusCode)

				codes := make([]string, 0, len(serverErr.Errors))
				for _, entry := range serverErr.Errors {
					codes = append(codes, entry.Code)
				}

				assert.Equal(t, tt.wantCodes, codes)
				assert.ErrorIs(t, err, asc.ErrServer)
			}

			if tt.wantDecode {
				var decodeErr *asc.DecodeError
				require.ErrorAs(t, err, &decodeErr)
				assert.Equal(t, tt.status, decodeErr.StatusCode)
				assert.Equal(t, tt.body, string(decodeErr.Body))
				assert.ErrorIs(t, err, asc.ErrDecode)
				assert.NotErrorIs(t, err, asc.ErrServer)
			}
		})
	}
}

const devicesPageBody = `{
  "data": [
    {"type": "devices", "id": "ABC123", "attributes": {"addedDate": "2022-12-10T12:02:45.000+00:00",
      "name": "Test iPhone", "deviceClass": "IPHONE", "model": null, "udid": "00008110-000A1C2E3E91801E",
      "platform": "IOS", "status": "ENABLED"}, "links": {"self": ""}}
  ],
  "links": {"self": "https://api.appstoreconnect.apple.com/v1/devices",
    "next": "https://api.appstoreconnect.apple.com/v1/devices?cursor=AQ"},
  "meta": {"paging": {"total": 2, "limit": 1}}
}`

func TestDecode_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	resp, err := asc.Decode[asc.DeviceResponse](200, []byte(`{"data": [`))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, asc.ErrDecode)
}

func TestDecode_IncompleteEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"null body", `null`, asc.ErrNullEnvelope},
		{"empty object", `{}`, asc.ErrMissingMember},
		{"unexpected members", `{"unexpected": 1}`, asc.ErrMissingMember},
		{"null data", `{"data": null, "links": {"self": ""}, "meta": {"paging": {"total": 0, "limit": 0}}}`, asc.ErrMissingMember},
		{"missing links", `{"data": [], "meta": {"paging": {"total": 0, "limit": 0}}}`, asc.ErrMissingMember},
		{"missing meta", `{"data": [], "links": {"self": ""}}`, asc.ErrMissingMember},
	}

	for _, tt := range tests {
		t.Run("page "+tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := asc.Decode[asc.DevicesResponse](200, []byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, asc.ErrDecode)
			assert.ErrorIs(t, err, tt.wantErr)

			var decodeErr *asc.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, 200, decodeErr.StatusCode)
		})
	}

	entityBodies := map[string]string{
		"null body":     `null`,
		"empty object":  `{}`,
		"unexpected":    `{"unexpected": 1}`,
		"missing links": `{"data": {"type": "devices", "id": "ABC123", "attributes": {"addedDate": "2022-12-10T12:02:45.000+00:00", "status": "ENABLED"}, "links": {"self": ""}}}`,
	}

	for name, body := range entityBodies {
		t.Run("entity "+name, func(t *testing.T) {
			t.Parallel()

			device, err := asc.Decode[asc.DeviceResponse](201, []byte(body))
			require.Error(t, err)
			assert.Nil(t, device)
			assert.ErrorIs(t, err, asc.ErrDecode)
		})
	}
}

func TestDecode_EmptyLastPage(t *testing.T) {
	t.Parallel()

	page, err := asc.Decode[asc.DevicesResponse](200,
		[]byte(`{"data": [], "links": {"self": ""}, "meta": {"paging": {"total": 0, "limit": 50}}}`))
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.False(t, page.HasNext())
}

func TestDecode_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := asc.Decode[asc.DeviceResponse](200, []byte(deviceBody))
	require.NoError(t, err)

	second, err := asc.Decode[asc.DeviceResponse](200, []byte(deviceBody))
	require.NoError(t, err)

	assert.Equal(t, *first, *second)

	firstPage, err := asc.Decode[asc.DevicesResponse](200, []byte(devicesPageBody))
	require.NoError(t, err)

	secondPage, err := asc.Decode[asc.DevicesResponse](200, []byte(devicesPageBody))
	require.NoError(t, err)

	assert.Equal(t, *firstPage, *secondPage)
	require.Len(t, firstPage.Data, 1)
	assert.Equal(t, "https://api.appstoreconnect.apple.com/v1/devices?cursor=AQ", firstPage.NextURL())
	assert.Equal(t, int64(2), firstPage.Meta.Paging.Total)
}

func TestDecode_UnknownEnumValue(t *testing.T) {
	t.Parallel()

	body := `{"data":{"type":"devices","id":"1","attributes":{"addedDate":"2022-12-10T12:02:45.000+00:00","status":"RETIRED"},"links":{"self":""}},"links":{"self":""}}`

	_, err := asc.Decode[asc.DeviceResponse](200, []byte(body))
	require.Error(t, err)
	assert.ErrorIs(t, err, asc.ErrDecode)
	assert.ErrorIs(t, err, asc.ErrUnknownEnumValue)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, asc.DecodeEmpty(204, nil))
	require.NoError(t, asc.DecodeEmpty(200, []byte("not json at all")))

	err := asc.DecodeEmpty(409, []byte(`{"errors":[{"status":"409","code":"ENTITY_ERROR","title":"t","detail":"d"}]}`))
	require.Error(t, err)
	assert.True(t, asc.IsConflict(err))

	err = asc.DecodeEmpty(500, []byte("oops"))
	assert.True(t, errors.Is(err, asc.ErrDecode))
}

func TestOutcome_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, asc.Outcome{StatusCode: tt.status}.Success(), "status %d", tt.status)
	}
}

func TestDecodeOutcome(t *testing.T) {
	t.Parallel()

	outcome := asc.Outcome{StatusCode: 200, Body: []byte(deviceBody)}

	resp, err := asc.DecodeOutcome[asc.DeviceResponse](outcome)
	require.NoError(t, err)
	assert.Equal(t, "Test iPhone", resp.Data.Attributes.Name)
}
