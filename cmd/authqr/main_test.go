package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authqr/pkg/payload"
	"github.com/dmitrymomot/authqr/pkg/qrcode"
	"github.com/dmitrymomot/authqr/pkg/secretkey"
	"github.com/dmitrymomot/authqr/pkg/storage"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func decodePNG(t *testing.T, data []byte) string {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := gozxingqr.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]any{
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	})
	require.NoError(t, err)
	return res.GetText()
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["version"])

	for _, flag := range []string{"url", "secret", "secret-length", "out", "no-terminal", "validate"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
	assert.Equal(t, defaultURL, cmd.Flags().Lookup("url").DefValue)
	assert.Equal(t, defaultOutFile, cmd.Flags().Lookup("out").DefValue)
}

func TestGenerate_Demo(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "auth_qr.png")

	stdout, _, err := execute(t, "--out", out)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "JSON payload (scannable content):", lines[0])

	p, err := payload.Parse(lines[1])
	require.NoError(t, err)
	assert.Equal(t, defaultURL, p.URL)
	assert.Len(t, p.SecretKey, 86, "64 random bytes in unpadded base64")

	assert.Contains(t, stdout, "QR code in terminal:")
	assert.Contains(t, stdout, "QR code saved as '"+out+"'")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "QR PNG size: "+strconv.Itoa(len(data))+" bytes")
	assert.Equal(t, lines[1], decodePNG(t, data))
}

func TestGenerate_FixedSecret(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	out := filepath.Join(dir, "codes", "fixed.png")

	stdout, _, err := execute(t, "--secret", "abc123", "--url", "https://example.com/", "--no-terminal", "--out", out)
	require.NoError(t, err)

	want := payload.Build("https://example.com/", "abc123")
	assert.True(t, strings.HasPrefix(stdout, "JSON payload (scannable content):\n"+want+"\n"))
	assert.NotContains(t, stdout, "QR code in terminal:")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	expected, err := qrcode.Encode(want)
	require.NoError(t, err)
	assert.Equal(t, expected, data)
}

func TestGenerate_Validate(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "qr.png")

	_, stderr, err := execute(t, "--validate", "--url", "not a url", "--secret", "k", "--no-terminal", "--out", out)
	require.ErrorIs(t, err, payload.ErrInvalidArgument)
	assert.Contains(t, stderr, "Error:")
	assert.NoFileExists(t, out)

	_, _, err = execute(t, "--url", "not a url", "--secret", "k", "--no-terminal", "--out", out)
	require.NoError(t, err, "validation is opt-in")
	assert.FileExists(t, out)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("capacity exceeded", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(t.TempDir(), "qr.png")
		_, _, err := execute(t, "--secret", strings.Repeat("x", 3000), "--no-terminal", "--out", out)
		require.ErrorIs(t, err, qrcode.ErrCapacityExceeded)
		assert.NoFileExists(t, out)
	})

	t.Run("invalid secret length", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "--secret-length", "0", "--out", filepath.Join(t.TempDir(), "qr.png"))
		require.ErrorIs(t, err, secretkey.ErrInvalidLength)
	})

	t.Run("unexpected argument", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "extra")
		require.Error(t, err)
	})
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version: ")
	assert.Contains(t, stdout, "commit: ")
}

func TestResolveBuildVersion(t *testing.T) {
	t.Parallel()

	v, c := resolveBuildVersion(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
	})
	assert.Equal(t, "v1.2.3", v)
	assert.Equal(t, "deadbeef", c)

	v, c = resolveBuildVersion(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, version, v)
	assert.Equal(t, gitCommit, c)
}

func TestOutputStorage(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	st, key, err := outputStorage(context.Background(), storage.Config{Driver: storage.DriverLocal, LocalDir: dir}, "nested/qr.png")
	require.NoError(t, err)
	assert.Equal(t, "qr.png", key)

	obj, err := st.Put(context.Background(), key, []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "qr.png"), obj.Location)
}
