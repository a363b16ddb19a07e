package fetch

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBlock_CloudflareHeaders(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: 403,
		Header:     http.Header{"Cf-Ray": []string{"abc123"}},
	}
	blocked, bt := DetectBlock(resp, []byte("forbidden"))
	assert.True(t, blocked)
	assert.Equal(t, BlockCloudflare, bt)
}

func TestDetectBlock_ChallengePage(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: 200, Header: http.Header{}}
	blocked, bt := DetectBlock(resp, []byte("Checking your browser before accessing"))
	assert.True(t, blocked)
	assert.Equal(t, BlockCloudflare, bt)
}

func TestDetectBlock_Captcha(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: 200, Header: http.Header{}}
	blocked, bt := DetectBlock(resp, []byte("<div class=\"g-recaptcha\"></div>"))
	assert.True(t, blocked)
	assert.Equal(t, BlockCaptcha, bt)
}

func TestDetectBlock_JSShell(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: 200, Header: http.Header{}}
	blocked, bt := DetectBlock(resp, []byte("<noscript>This site requires JavaScript</noscript>"))
	assert.True(t, blocked)
	assert.Equal(t, BlockJSShell, bt)
}

func TestDetectBlock_CleanPage(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: 200, Header: http.Header{}}
	blocked, bt := DetectBlock(resp, []byte("<html><body>Call us at (415) 555-0199</body></html>"))
	assert.False(t, blocked)
	assert.Equal(t, BlockNone, bt)
}

func TestDetectBlock_NilResponse(t *testing.T) {
	t.Parallel()

	blocked, _ := DetectBlock(nil, nil)
	assert.False(t, blocked)
}
