package main

import (
	"bytes"
	"context"
	"errors"
	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func _freeAddr(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func _startApp(t *testing.T, env func(string) string) (stop func() error) {
	ctx, cancel := context.WithCancel(context.Background())
	appErr := make(chan error, 1)
	go func() {
		appErr <- RunAppContext(ctx, env, io.Discard)
	}()

	return func() error {
		cancel()
		select {
		case err := <-appErr:
			return err
		case <-time.After(10 * time.Second):
			return errors.New("app did not stop")
		}
	}
}

func _waitHealthy(t *testing.T, baseUrl string) {
	client := http.Client{Timeout: time.Second}

	var err error
	var res *http.Response
	for i := 0; i < 50; i++ {
		res, err = client.Get(baseUrl + "/healthcheck")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "health", string(body))
}

func TestRunAppContext(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		addr := _freeAddr(t)
		baseUrl := "http://" + addr
		env := _env(map[string]string{
			"LISTEN_ADDR":       addr,
			"DATABASE_FILEPATH": filepath.Join(t.TempDir(), "sheets.db"),
		})

		stop := _startApp(t, env)
		_waitHealthy(t, baseUrl)

		res, err := http.Post(baseUrl+"/api/v1/devchallenge/A1", "application/json", strings.NewReader(`{"expression":"40"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		_ = res.Body.Close()

		res, err = http.Post(baseUrl+"/api/v1/devchallenge/B1", "application/json", strings.NewReader(`{"expression":"A1+2"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		_ = res.Body.Close()

		assert.NoError(t, stop())

		// the restarted app replays the stored sheet
		stop = _startApp(t, env)
		_waitHealthy(t, baseUrl)

		res, err = http.Get(baseUrl + "/api/v1/devchallenge/B1")
		require.NoError(t, err)
		body, err := io.ReadAll(res.Body)
		_ = res.Body.Close()
		require.NoError(t, err)

		response := map[string]any{}
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "B1", response["reference"])
		assert.Equal(t, "A1+2", response["expression"])
		assert.EqualValues(t, 42, response["value"])

		assert.NoError(t, stop())
	})

	t.Run("fail", func(t *testing.T) {
		err := RunAppContext(context.Background(), _env(map[string]string{}), io.Discard)

		assert.ErrorIs(t, err, ConfigError)
		assert.Contains(t, err.Error(), "database_filepath")
	})

	t.Run("listen_fail", func(t *testing.T) {
		err := RunAppContext(context.Background(), _env(map[string]string{
			"LISTEN_ADDR":       "127.0.0.1:-1",
			"DATABASE_FILEPATH": filepath.Join(t.TempDir(), "sheets.db"),
		}), io.Discard)

		assert.Error(t, err)
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}
