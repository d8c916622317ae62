// Package api serves a decoded BIF6 file over HTTP.
package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/msimaging/bif6/internal/logger"
	"github.com/msimaging/bif6/pkg/bif6"
)

// Server exposes read-only endpoints over one decoded file.
type Server struct {
	file *File
	log  logger.Logger
}

func NewServer(file *File, log logger.Logger) *Server {
	return &Server{file: file, log: log}
}

// Register mounts all routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(requestID())
	e.GET("/v1/file", s.handleFileInfo)
	e.GET("/v1/intervals", s.handleListIntervals)
	e.GET("/v1/intervals/:id", s.handleGetInterval)
	e.GET("/v1/intervals/:id/image", s.handleGetImage)
}

// requestID tags every response so server logs can be correlated.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			c.Response().Header().Set("X-Request-ID", "req_"+uuid.NewString())
			return next(c)
		}
	}
}

func (s *Server) handleFileInfo(c *echo.Context) error {
	return c.JSON(http.StatusOK, FileInfo{
		Path:              s.file.Path,
		DeclaredIntervals: s.file.Header.IntervalCount,
		DecodedIntervals:  len(s.file.Intervals),
		Width:             s.file.Header.Width,
		Height:            s.file.Header.Height,
	})
}

func (s *Server) handleListIntervals(c *echo.Context) error {
	infos := make([]IntervalInfo, 0, len(s.file.Intervals))
	for _, iv := range s.file.Intervals {
		infos = append(infos, intervalInfo(iv))
	}
	return c.JSON(http.StatusOK, infos)
}

func (s *Server) handleGetInterval(c *echo.Context) error {
	iv, ok, err := s.lookup(c)
	if !ok {
		return err
	}
	st := iv.Stats()
	return c.JSON(http.StatusOK, IntervalDetail{
		IntervalInfo: intervalInfo(iv),
		Stats: IntervalStats{
			Min:    st.Min,
			Max:    st.Max,
			Mean:   st.Mean,
			StdDev: st.StdDev,
			Total:  st.Total,
		},
	})
}

func (s *Server) handleGetImage(c *echo.Context) error {
	iv, ok, err := s.lookup(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, IntervalImage{
		ID:     iv.ID,
		Width:  iv.Image.Width(),
		Height: iv.Image.Height(),
		Pixels: iv.Image,
	})
}

// lookup resolves the :id path parameter. When ok is false an error response
// has already been written and the returned error is the write result.
func (s *Server) lookup(c *echo.Context) (iv *bif6.Interval, ok bool, err error) {
	id, perr := strconv.ParseUint(c.Param("id"), 10, 32)
	if perr != nil {
		return nil, false, writeBadRequest(c, "interval id must be an unsigned 32-bit integer")
	}
	iv = s.file.Interval(uint32(id))
	if iv == nil {
		s.log.Debug("interval not found", "id", id)
		return nil, false, writeNotFound(c, "no interval with id "+c.Param("id"))
	}
	return iv, true, nil
}

func intervalInfo(iv *bif6.Interval) IntervalInfo {
	return IntervalInfo{
		ID:       iv.ID,
		MZLower:  iv.MZLower,
		MZMiddle: iv.MZMiddle,
		MZUpper:  iv.MZUpper,
		TIC:      iv.IsTICImage(),
	}
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{Message: msg, Type: errType},
	})
}
