package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apiworkers "github.com/torii-ml/torii-api-types/workers"
	binderr "github.com/torii-ml/torii/pkg/api-types-binding/errors"
	bindworker "github.com/torii-ml/torii/pkg/api-types-binding/workers"
	"github.com/torii-ml/torii/pkg/domain"
	kerr "github.com/torii-ml/torii/pkg/domain/errors"
	workerdb "github.com/torii-ml/torii/pkg/domain/worker/db"
	"github.com/torii-ml/torii/pkg/utils/slices"
)

func WorkerRegisterHandler(dbworker workerdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if strings.ToLower(req.Header.Get("content-type")) != "application/json" {
			return binderr.BadRequest(
				"unexpected content type. it should be application/json", nil,
			)
		}

		specInReq := new(apiworkers.WorkerSpec)
		if err := json.NewDecoder(req.Body).Decode(specInReq); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}

		worker, err := dbworker.Register(ctx, domain.WorkerSpec{
			Name:     specInReq.Name,
			CpuBrand: specInReq.CpuBrand,
			Memory:   specInReq.Memory,
			GPUs: domain.GPUDescriptor{
				GPUs: slices.Map(specInReq.GPUs, func(g apiworkers.GPU) domain.GPU {
					return domain.GPU{Name: g.Name, Memory: g.Memory}
				}),
			},
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidSpec) {
				return binderr.BadRequest(err.Error(), err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindworker.ComposeDetail(worker))
	}
}

func WorkerListHandler(dbworker workerdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		c.Response().Header().Add("Content-Type", "application/json")

		ws, err := dbworker.List(ctx)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(ws, bindworker.ComposeDetail))
	}
}

func WorkerSetActiveHandler(dbworker workerdb.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		name := c.Param("name")
		if name == "" {
			return binderr.BadRequest("worker name is required", nil)
		}

		body := new(apiworkers.SetActive)
		if err := json.NewDecoder(req.Body).Decode(body); err != nil {
			return binderr.BadRequest(
				"can not understand the requested json", err,
			)
		}

		worker, err := dbworker.SetActive(ctx, name, body.Active)
		if err != nil {
			if errors.Is(err, kerr.ErrMissing) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindworker.ComposeDetail(worker))
	}
}
