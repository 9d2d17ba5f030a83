package main

import (
	"dependencySheet/contracts"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/zeebo/xxh3"
	"net/http"
)

var RequestBindingError = errors.New("invalid request")

type ApiController struct {
	SheetService    contracts.SheetService
	SequenceService contracts.SequenceService
	Generators      GeneratorRegistry
	Calculators     CalculatorRegistry
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SequenceEndpointParams struct {
	SequenceId string `uri:"sequence_id" binding:"required"`
}

type SetCellRequest struct {
	Expression string `json:"expression" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

type PercentilesRequest struct {
	Generator  string                   `json:"generator" binding:"required"`
	Params     contracts.StrategyParams `json:"params"`
	Calculator string                   `json:"calculator" binding:"required"`
}

type AppendSequenceRequest struct {
	Number *int `json:"number" binding:"required"`
}

func NewApiController(
	sheetService contracts.SheetService, sequenceService contracts.SequenceService,
	generators GeneratorRegistry, calculators CalculatorRegistry,
) *ApiController {
	return &ApiController{
		SheetService:    sheetService,
		SequenceService: sequenceService,
		Generators:      generators,
		Calculators:     calculators,
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := bindRequest(c, &params, nil)

	if err == nil {
		response, err = api.SheetService.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := bindRequest(c, &params, &request)

	if err == nil {
		response, err = api.SheetService.SetCell(params.SheetId, params.CellId, request.Expression)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{
			"reference":  params.CellId,
			"expression": request.Expression,
			"error":      err.Error(),
		})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetView

	err := bindRequest(c, &params, nil)

	if err == nil {
		response, err = api.SheetService.GetSheet(params.SheetId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DeleteSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := bindRequest(c, &params, nil)

	if err == nil {
		err = api.SheetService.DeleteSheet(params.SheetId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusNoContent)
	}
}

// PrintSheetAction renders the grid as text; the ETag is the xxh3 hash of the body
func (api *ApiController) PrintSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var body []byte

	err := bindRequest(c, &params, nil)

	if err == nil {
		body, err = api.SheetService.RenderSheet(params.SheetId)
	}

	if err != nil {
		c.String(errorStatus(err), err.Error())
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxh3.Hash(body))
	c.Header("ETag", etag)

	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := bindRequest(c, &params, &request)

	if err == nil {
		err = api.SheetService.Subscribe(params.SheetId, params.CellId, request.WebhookUrl)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"webhook_url": request.WebhookUrl})
	}
}

func (api *ApiController) PercentilesAction(c *gin.Context) {
	request := PercentilesRequest{}
	var generator contracts.NumberGenerator
	var calculator contracts.PercentileCalculator
	var results []contracts.PercentileResult

	err := bindRequest(c, nil, &request)

	if err == nil {
		generator, err = api.Generators.Create(request.Generator, request.Params)
	}

	if err == nil {
		calculator, err = api.Calculators.Get(request.Calculator)
	}

	if err == nil {
		results, err = NewDistributionTester(generator, calculator).Run()
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"generator":   request.Generator,
			"calculator":  request.Calculator,
			"percentiles": results,
		})
	}
}

func (api *ApiController) AppendSequenceAction(c *gin.Context) {
	params := SequenceEndpointParams{}
	request := AppendSequenceRequest{}
	var response *contracts.SequenceReport

	err := bindRequest(c, &params, &request)

	if err == nil {
		response, err = api.SequenceService.Append(params.SequenceId, *request.Number)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetSequenceAction(c *gin.Context) {
	params := SequenceEndpointParams{}
	var response *contracts.SequenceReport

	err := bindRequest(c, &params, nil)

	if err == nil {
		response, err = api.SequenceService.Report(params.SequenceId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, contracts.CellNotFoundError),
		errors.Is(err, contracts.SheetNotFoundError),
		errors.Is(err, contracts.SequenceNotFoundError):
		return http.StatusNotFound

	case errors.Is(err, contracts.ExpressionError),
		errors.Is(err, contracts.OutOfRangeError),
		errors.Is(err, contracts.EmptyInputError):
		return http.StatusUnprocessableEntity

	case errors.Is(err, contracts.UnknownStrategyError), errors.Is(err, RequestBindingError):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func bindRequest(c *gin.Context, uri any, body any) error {
	if uri != nil {
		if err := c.ShouldBindUri(uri); err != nil {
			return fmt.Errorf("%w: %s", RequestBindingError, err)
		}
	}

	if body != nil {
		if err := c.ShouldBindJSON(body); err != nil {
			return fmt.Errorf("%w: %s", RequestBindingError, err)
		}
	}

	return nil
}
