package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	DeleteSheetAction(c *gin.Context)
	PrintSheetAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	PercentilesAction(c *gin.Context)
	AppendSequenceAction(c *gin.Context)
	GetSequenceAction(c *gin.Context)
}
