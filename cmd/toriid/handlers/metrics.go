package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apimetrics "github.com/torii-ml/torii-api-types/metrics"
	binderr "github.com/torii-ml/torii/pkg/api-types-binding/errors"
	bindmetric "github.com/torii-ml/torii/pkg/api-types-binding/metrics"
	"github.com/torii-ml/torii/pkg/domain"
	metricdb "github.com/torii-ml/torii/pkg/domain/metric/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

// metricModeError maps the mode-resolution failures to HTTP errors.
//
// Inference failure is the caller's request being underspecified (400);
// conflict means the name is already bound to the other mode (409).
func metricModeError(err error) (*echo.HTTPError, bool) {
	if errors.Is(err, domain.ErrModeInference) {
		return binderr.NewErrorMessage(
			http.StatusBadRequest,
			"metric mode can not be inferred",
			binderr.WithCode("mode_inference"),
			binderr.WithAdvice(`name the metric with "acc" or "loss", or request an explicit mode`),
			binderr.WithError(err),
		), true
	}
	if errors.Is(err, domain.ErrModeConflict) {
		return binderr.Conflict(
			"metric mode conflicts with the stored one",
			binderr.WithCode("mode_conflict"),
			binderr.WithError(err),
		), true
	}
	return nil, false
}

func asModeRequest(spec apimetrics.MetricSpec) (domain.MetricRequest, error) {
	mode, err := domain.ParseModeRequest(string(spec.Mode))
	if err != nil {
		return domain.MetricRequest{}, err
	}
	return domain.MetricRequest{Name: spec.Name, Mode: mode}, nil
}

func MetricRegisterHandler(dbmetric metricdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if strings.ToLower(req.Header.Get("content-type")) != "application/json" {
			return binderr.BadRequest(
				"unexpected content type. it should be application/json", nil,
			)
		}

		specInReq := new(apimetrics.MetricSpec)
		if err := json.NewDecoder(req.Body).Decode(specInReq); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}

		mreq, err := asModeRequest(*specInReq)
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		metric, err := dbmetric.GetOrCreate(ctx, mreq)
		if err != nil {
			if httperr, ok := metricModeError(err); ok {
				return httperr
			}
			if errors.Is(err, domain.ErrInvalidSpec) {
				return binderr.BadRequest(err.Error(), err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindmetric.ComposeDetail(metric))
	}
}

func MetricListHandler(dbmetric metricdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		ms, err := dbmetric.List(ctx)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(ms, bindmetric.ComposeDetail))
	}
}
