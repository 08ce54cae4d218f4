package handler

import (
	"net/http"

	"meal-manager/internal/logger"
	"meal-manager/internal/model"
	"meal-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type SheetHandler struct {
	svc *service.SheetService
}

func NewSheetHandler(svc *service.SheetService) *SheetHandler { return &SheetHandler{svc: svc} }

// POST /api/meals/import  (multipart field "file", .xlsx)
func (h *SheetHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 업로드해주세요."})
		return
	}
	src, err := file.Open()
	if err != nil {
		logger.Error("import open upload failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	defer src.Close()

	res, err := h.svc.Import(c.Request.Context(), src)
	if err != nil {
		logger.Error("import failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	logger.Info("import done", "file", file.Filename, "imported", res.Imported, "skipped", len(res.Errors))
	c.JSON(http.StatusOK, res)
}

// GET /api/meals/export
func (h *SheetHandler) Export(c *gin.Context) {
	f, err := h.svc.Export(c.Request.Context())
	if err != nil {
		logger.Error("export failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="meals.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("export write failed", "err", err)
	}
}
