package request

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type payload struct {
		ImageURL OptionalString `json:"imageUrl"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{name: "absent", body: `{}`, wantPresent: false},
		{name: "explicit null", body: `{"imageUrl": null}`, wantPresent: true, wantValue: nil},
		{name: "value", body: `{"imageUrl": "https://example.com/x.png"}`, wantPresent: true,
			wantValue: ptr("https://example.com/x.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantPresent, p.ImageURL.Present)
			assert.Equal(t, tt.wantValue, p.ImageURL.Value)
		})
	}
}

func TestDirectiveFromJSON(t *testing.T) {
	url := "https://example.com/x.png"

	tests := []struct {
		name        string
		imageURL    OptionalString
		removeImage bool
		wantOp      usecase.ImageOp
		wantURL     string
	}{
		{name: "absent keeps", imageURL: OptionalString{}, wantOp: usecase.ImageKeep},
		{name: "explicit null removes", imageURL: OptionalString{Present: true}, wantOp: usecase.ImageRemove},
		{name: "value sets url", imageURL: OptionalString{Present: true, Value: &url},
			wantOp: usecase.ImageSetURL, wantURL: url},
		{name: "remove flag wins over url", imageURL: OptionalString{Present: true, Value: &url},
			removeImage: true, wantOp: usecase.ImageRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive := directiveFromJSON(tt.imageURL, tt.removeImage)
			assert.Equal(t, tt.wantOp, directive.Op)
			assert.Equal(t, tt.wantURL, directive.URL)
		})
	}
}

func TestDirectiveFromForm(t *testing.T) {
	file := &service.ImageUpload{Data: []byte("png"), Filename: "x.png", ContentType: "image/png"}

	tests := []struct {
		name        string
		file        *service.ImageUpload
		removeImage bool
		imageURL    string
		wantOp      usecase.ImageOp
	}{
		{name: "nothing keeps", wantOp: usecase.ImageKeep},
		{name: "empty url is absent", imageURL: "", wantOp: usecase.ImageKeep},
		{name: "remove flag removes", removeImage: true, wantOp: usecase.ImageRemove},
		{name: "url sets", imageURL: "https://example.com/x.png", wantOp: usecase.ImageSetURL},
		{name: "file replaces", file: file, wantOp: usecase.ImageReplaceFile},
		// A file together with a remove flag collapses to one replace so
		// the old blob is deleted exactly once.
		{name: "file wins over remove", file: file, removeImage: true, wantOp: usecase.ImageReplaceFile},
		{name: "file wins over url", file: file, imageURL: "https://example.com/x.png", wantOp: usecase.ImageReplaceFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive := directiveFromForm(tt.file, tt.removeImage, tt.imageURL)
			assert.Equal(t, tt.wantOp, directive.Op)
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "on", " true "} {
		assert.True(t, truthy(v), v)
	}
	for _, v := range []string{"", "false", "0", "no", "off", "nope"} {
		assert.False(t, truthy(v), v)
	}
}

func TestBindSpati_JSON(t *testing.T) {
	body := `{
		"name": "Neukölln Nights",
		"description": "Open late",
		"latitude": 52.48,
		"longitude": 13.43,
		"address": "Sonnenallee 1",
		"hours": "18:00-06:00",
		"type": "kiosk",
		"rating": 4.5,
		"amenityIds": ["a1", "a2"],
		"moodId": "m1",
		"imageUrl": null
	}`

	c := jsonContext(t, body)

	input, err := BindSpati(c)
	require.NoError(t, err)
	assert.Equal(t, "Neukölln Nights", input.Name)
	assert.Equal(t, []string{"a1", "a2"}, input.AmenityIDs)
	require.NotNil(t, input.MoodID)
	assert.Equal(t, "m1", *input.MoodID)
	assert.Equal(t, usecase.ImageRemove, input.Image.Op)
}

func TestBindSpati_JSON_OmittedAmenitiesBindEmpty(t *testing.T) {
	c := jsonContext(t, `{"name": "Corner Store"}`)

	input, err := BindSpati(c)
	require.NoError(t, err)
	assert.NotNil(t, input.AmenityIDs)
	assert.Empty(t, input.AmenityIDs)
	assert.Equal(t, usecase.ImageKeep, input.Image.Op)
}

func TestBindSpati_Multipart(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Kotti Kiosk"))
	require.NoError(t, writer.WriteField("latitude", "52.499"))
	require.NoError(t, writer.WriteField("longitude", "13.418"))
	require.NoError(t, writer.WriteField("amenityIds", `["a1","a2"]`))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="front.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake png bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c := multipartContext(t, &buf, writer.FormDataContentType())

	input, err := BindSpati(c)
	require.NoError(t, err)
	assert.Equal(t, "Kotti Kiosk", input.Name)
	assert.InDelta(t, 52.499, input.Latitude, 1e-9)
	assert.Equal(t, []string{"a1", "a2"}, input.AmenityIDs)
	assert.Equal(t, usecase.ImageReplaceFile, input.Image.Op)
	require.NotNil(t, input.Image.File)
	assert.Equal(t, "front.png", input.Image.File.Filename)
	assert.Equal(t, "image/png", input.Image.File.ContentType)
	assert.Equal(t, []byte("fake png bytes"), input.Image.File.Data)
}

func TestBindSpati_Multipart_RejectsUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="evil.html"`)
	header.Set("Content-Type", "text/html")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("<html>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c := multipartContext(t, &buf, writer.FormDataContentType())

	input, err := BindSpati(c)
	assert.Nil(t, input)
	assert.Error(t, err)
}

func TestBindSpati_Multipart_BadNumber(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("latitude", "not-a-number"))
	require.NoError(t, writer.Close())

	c := multipartContext(t, &buf, writer.FormDataContentType())

	input, err := BindSpati(c)
	assert.Nil(t, input)
	assert.Error(t, err)
}

func jsonContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return e.NewContext(req, httptest.NewRecorder())
}

func multipartContext(t *testing.T, body *bytes.Buffer, contentType string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	return e.NewContext(req, httptest.NewRecorder())
}

func ptr(s string) *string {
	return &s
}
