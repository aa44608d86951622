package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apiresults "github.com/torii-ml/torii-api-types/results"
	binderr "github.com/torii-ml/torii/pkg/api-types-binding/errors"
	bindresult "github.com/torii-ml/torii/pkg/api-types-binding/results"
	"github.com/torii-ml/torii/pkg/domain"
	kerr "github.com/torii-ml/torii/pkg/domain/errors"
	resultdb "github.com/torii-ml/torii/pkg/domain/result/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func ResultReportHandler(dbresult resultdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if strings.ToLower(req.Header.Get("content-type")) != "application/json" {
			return binderr.BadRequest(
				"unexpected content type. it should be application/json", nil,
			)
		}

		specInReq := new(apiresults.ResultSpec)
		if err := json.NewDecoder(req.Body).Decode(specInReq); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}

		mreq, err := asModeRequest(specInReq.Metric)
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		result, err := dbresult.Report(ctx, domain.ResultSpec{
			TrialId: specInReq.TrialId,
			Metric:  mreq,
			Step:    specInReq.Step,
			Value:   specInReq.Value,
		})
		if err != nil {
			if httperr, ok := metricModeError(err); ok {
				return httperr
			}
			if errors.Is(err, domain.ErrInvalidSpec) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindresult.ComposeDetail(result))
	}
}

func ListResultsByTrialHandler(dbresult resultdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		id, err := paramAsId(c, "trialId")
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		rs, err := dbresult.ListByTrial(ctx, id)
		if err != nil {
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(rs, bindresult.ComposeDetail))
	}
}

func ExperimentSeriesHandler(dbresult resultdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		id, err := paramAsId(c, "experimentId")
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		series, err := dbresult.SeriesByExperiment(ctx, id)
		if err != nil {
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		resp := make([]apiresults.Series, 0, len(series))
		for _, s := range series {
			composed, err := bindresult.ComposeSeries(s)
			if err != nil {
				return binderr.InternalServerError(err)
			}
			resp = append(resp, composed)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
