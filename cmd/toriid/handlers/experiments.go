package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	apiexperiments "github.com/torii-ml/torii-api-types/experiments"
	binderr "github.com/torii-ml/torii/pkg/api-types-binding/errors"
	bindexperiment "github.com/torii-ml/torii/pkg/api-types-binding/experiments"
	"github.com/torii-ml/torii/pkg/domain"
	experimentdb "github.com/torii-ml/torii/pkg/domain/experiment/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func paramAsId(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.New("path parameter should be a positive integer")
	}
	return id, nil
}

func ExperimentRegisterHandler(dbexperiment experimentdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if strings.ToLower(req.Header.Get("content-type")) != "application/json" {
			return binderr.BadRequest(
				"unexpected content type. it should be application/json", nil,
			)
		}

		specInReq := new(apiexperiments.ExperimentSpec)
		if err := json.NewDecoder(req.Body).Decode(specInReq); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}

		metricReqs := make([]domain.MetricRequest, 0, len(specInReq.Metrics))
		for _, m := range specInReq.Metrics {
			mreq, err := asModeRequest(m)
			if err != nil {
				return binderr.BadRequest(err.Error(), err)
			}
			metricReqs = append(metricReqs, mreq)
		}

		experiment, err := dbexperiment.GetOrCreate(ctx, domain.ExperimentSpec{
			Group:           specInReq.Group,
			Identifier:      specInReq.Identifier,
			HyperParameters: domain.HyperParameters(specInReq.HyperParameters),
			Metrics:         metricReqs,
			TrialQuota:      specInReq.TrialQuota,
		})
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
		return c.JSON(http.StatusOK, bindexperiment.ComposeDetail(experiment))
	}
}

func FindExperimentHandler(dbexperiment experimentdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		ids, err := dbexperiment.Find(ctx, domain.ExperimentFindQuery{
			Group:      c.QueryParam("group"),
			Identifier: c.QueryParam("identifier"),
		})
		if err != nil {
			return binderr.InternalServerError(err)
		}

		experiments, err := dbexperiment.Get(ctx, ids)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(
			ids,
			func(id int) apiexperiments.Detail {
				return bindexperiment.ComposeDetail(experiments[id])
			},
		))
	}
}

func GetExperimentHandler(dbexperiment experimentdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		id, err := paramAsId(c, "experimentId")
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		experiments, err := dbexperiment.Get(ctx, []int{id})
		if err != nil {
			return binderr.InternalServerError(err)
		}
		experiment, ok := experiments[id]
		if !ok {
			return binderr.NotFound()
		}

		return c.JSON(http.StatusOK, bindexperiment.ComposeDetail(experiment))
	}
}
