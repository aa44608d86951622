package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	apitrials "github.com/torii-ml/torii-api-types/trials"
	binderr "github.com/torii-ml/torii/pkg/api-types-binding/errors"
	bindtrial "github.com/torii-ml/torii/pkg/api-types-binding/trials"
	"github.com/torii-ml/torii/pkg/domain"
	kerr "github.com/torii-ml/torii/pkg/domain/errors"
	trialdb "github.com/torii-ml/torii/pkg/domain/trial/db"
	"github.com/torii-ml/torii/pkg/utils/logic"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func TrialAdmissionHandler(dbtrial trialdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if strings.ToLower(req.Header.Get("content-type")) != "application/json" {
			return binderr.BadRequest(
				"unexpected content type. it should be application/json", nil,
			)
		}

		specInReq := new(apitrials.AdmissionSpec)
		if err := json.NewDecoder(req.Body).Decode(specInReq); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}
		if specInReq.WorkerId <= 0 || specInReq.ExperimentId <= 0 {
			return binderr.BadRequest(
				"workerId and experimentId are required", nil,
			)
		}

		trial, admitted, err := dbtrial.Admit(
			ctx, specInReq.WorkerId, specInReq.ExperimentId,
		)
		if err != nil {
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtrial.ComposeAdmission(trial, admitted))
	}
}

func TrialCompleteHandler(dbtrial trialdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := paramAsId(c, "trialId")
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		trial, err := dbtrial.Complete(ctx, id)
		if err != nil {
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtrial.ComposeDetail(trial))
	}
}

func GetTrialHandler(dbtrial trialdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		id, err := paramAsId(c, "trialId")
		if err != nil {
			return binderr.BadRequest(err.Error(), err)
		}

		trials, err := dbtrial.Get(ctx, []int{id})
		if err != nil {
			return binderr.InternalServerError(err)
		}
		trial, ok := trials[id]
		if !ok {
			return binderr.NotFound()
		}

		return c.JSON(http.StatusOK, bindtrial.ComposeDetail(trial))
	}
}

func FindTrialHandler(dbtrial trialdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		query := domain.TrialFindQuery{}
		if p := c.QueryParam("experiment"); p != "" {
			id, err := strconv.Atoi(p)
			if err != nil {
				return binderr.BadRequest(`query parameter "experiment" should be an integer`, err)
			}
			query.ExperimentId = []int{id}
		}
		if p := c.QueryParam("worker"); p != "" {
			id, err := strconv.Atoi(p)
			if err != nil {
				return binderr.BadRequest(`query parameter "worker" should be an integer`, err)
			}
			query.WorkerId = []int{id}
		}
		switch p := c.QueryParam("complete"); p {
		case "":
			query.Complete = logic.Indeterminate
		case "true":
			query.Complete = logic.True
		case "false":
			query.Complete = logic.False
		default:
			return binderr.BadRequest(`query parameter "complete" should be true or false`, nil)
		}

		ids, err := dbtrial.Find(ctx, query)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		trials, err := dbtrial.Get(ctx, ids)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(
			ids,
			func(id int) apitrials.Detail {
				return bindtrial.ComposeDetail(trials[id])
			},
		))
	}
}
