package api

import (
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/msimaging/bif6/internal/logger"
	"github.com/msimaging/bif6/pkg/bif6"
)

// writeFixture builds a small two-interval file: width=2, height=2,
// interval 0 (the TIC image) and interval 5.
func writeFixture(t *testing.T) string {
	t.Helper()

	b := []byte(bif6.MagicBIF6)
	b = binary.LittleEndian.AppendUint16(b, 2) // interval count
	b = binary.LittleEndian.AppendUint16(b, 2) // width
	b = binary.LittleEndian.AppendUint16(b, 2) // height

	record := func(id uint32, lower, middle, upper float32, pixels []uint32) {
		b = binary.LittleEndian.AppendUint32(b, id)
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(lower))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(middle))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(upper))
		for _, p := range pixels {
			b = binary.LittleEndian.AppendUint32(b, p)
		}
	}
	record(0, 100, 150, 200, []uint32{1, 2, 3, 4})
	record(5, 200, 250, 300, []uint32{10, 20, 30, 40})

	path := filepath.Join(t.TempDir(), "fixture.bif6")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	file, err := LoadFile(writeFixture(t))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	server := NewServer(file, logger.JSON(os.Stderr, slog.LevelError))
	e := echo.New()
	server.Register(e)
	return e
}

func doGET(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFileInfo(t *testing.T) {
	t.Parallel()

	rec := doGET(t, newTestEcho(t), "/v1/file")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	var info FileInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if info.DeclaredIntervals != 2 || info.DecodedIntervals != 2 {
		t.Errorf("counts: got %+v", info)
	}
	if info.Width != 2 || info.Height != 2 {
		t.Errorf("dimensions: got %+v", info)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestListIntervals(t *testing.T) {
	t.Parallel()

	rec := doGET(t, newTestEcho(t), "/v1/intervals")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	var infos []IntervalInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("interval count: got %d want 2", len(infos))
	}
	if !infos[0].TIC || infos[0].ID != 0 {
		t.Errorf("first interval should be the TIC image: %+v", infos[0])
	}
	if infos[1].TIC || infos[1].ID != 5 {
		t.Errorf("second interval: %+v", infos[1])
	}
}

func TestGetInterval(t *testing.T) {
	t.Parallel()

	rec := doGET(t, newTestEcho(t), "/v1/intervals/5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	var detail IntervalDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if detail.MZLower != 200 || detail.MZUpper != 300 {
		t.Errorf("m/z bounds: %+v", detail)
	}
	if detail.Stats.Min != 10 || detail.Stats.Max != 40 || detail.Stats.Total != 100 {
		t.Errorf("stats: %+v", detail.Stats)
	}
	if detail.Stats.Mean != 25 {
		t.Errorf("mean: got %g want 25", detail.Stats.Mean)
	}
}

func TestGetImage(t *testing.T) {
	t.Parallel()

	rec := doGET(t, newTestEcho(t), "/v1/intervals/0/image")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	var img IntervalImage
	if err := json.Unmarshal(rec.Body.Bytes(), &img); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("shape: got (%d, %d) want (2, 2)", img.Width, img.Height)
	}
	// Physical rows were [1 2] and [3 4]; logical pixels[x][y] transposes.
	want := [][]uint32{{1, 3}, {2, 4}}
	for x := range want {
		for y := range want[x] {
			if img.Pixels[x][y] != want[x][y] {
				t.Errorf("pixels[%d][%d]: got %d want %d", x, y, img.Pixels[x][y], want[x][y])
			}
		}
	}
}

func TestIntervalErrors(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)

	rec := doGET(t, e, "/v1/intervals/999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d want 404", rec.Code)
	}

	rec = doGET(t, e, "/v1/intervals/notanumber")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d want 400", rec.Code)
	}
}
