package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"gasket-service/internal/common/logging"
	"gasket-service/internal/gasket/drawing"
	"gasket-service/internal/gasket/geometry"
	"gasket-service/internal/gasket/models"
	"gasket-service/internal/gasket/repository"
	"gasket-service/internal/gasket/service"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ============================================================
// Gasket Handler
// ============================================================

const dxfContentType = "application/dxf"

type GasketHandler struct {
	repo    *repository.Repository
	storage *service.FileStorage
	unit    drawing.Unit
	log     zerolog.Logger
}

func NewGasketHandler(repo *repository.Repository, storage *service.FileStorage, unit drawing.Unit) *GasketHandler {
	return &GasketHandler{
		repo:    repo,
		storage: storage,
		unit:    unit,
		log:     logging.Component("gasket"),
	}
}

// Generate строит прокладку, сохраняет DXF и отдаёт его как вложение.
// Параметры берутся из query (GET) или из JSON тела (POST).
func (h *GasketHandler) Generate(c fiber.Ctx) error {
	layout, err := h.build(c)
	if err != nil {
		return writeError(c, err)
	}

	id := uuid.NewString()
	fileName := drawing.FileName(layout)
	path := h.storage.DrawingPath(id, fileName)
	if err := h.storage.EnsureDir(id); err != nil {
		h.log.Error().Err(err).Msg("prepare drawing dir")
		return writeError(c, err)
	}

	doc := drawing.NewDXF()
	if err := drawing.Emit(drawing.WithUnit(doc, h.unit), layout); err != nil {
		h.log.Error().Err(err).Msg("emit drawing")
		return writeError(c, err)
	}
	if err := doc.SaveAs(path); err != nil {
		h.log.Error().Err(err).Str("path", path).Msg("save drawing")
		return writeError(c, err)
	}

	rec := &models.DrawingRecord{
		ID:        id,
		FileName:  fileName,
		Path:      path,
		HoleCount: layout.HoleCount(),
		Params:    layout.Params.Raw(),
		Unit:      string(h.unit),
	}
	if err := h.repo.Insert(context.Background(), rec); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("record drawing")
		// Без записи в базе файл недоступен, убираем его.
		if rmErr := os.RemoveAll(h.storage.DrawingDir(id)); rmErr != nil {
			h.log.Warn().Err(rmErr).Str("id", id).Msg("remove orphan drawing")
		}
		return writeError(c, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return writeError(c, fmt.Errorf("read drawing: %w", err))
	}

	h.log.Info().
		Str("id", id).
		Int("holes", layout.HoleCount()).
		Strs("warnings", layout.Warnings()).
		Msg("drawing generated")

	setLayoutHeaders(c, layout)
	c.Set("X-Drawing-ID", id)
	c.Attachment(fileName)
	// Attachment выставляет тип по расширению, перекрываем.
	c.Set(fiber.HeaderContentType, dxfContentType)
	return c.Send(data)
}

// Preview отдаёт SVG превью без сохранения.
func (h *GasketHandler) Preview(c fiber.Ctx) error {
	layout, err := h.build(c)
	if err != nil {
		return writeError(c, err)
	}

	svg := drawing.NewSVG()
	if err := drawing.Emit(svg, layout); err != nil {
		return writeError(c, err)
	}

	setLayoutHeaders(c, layout)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(svg.Render(layout.Params.B * 0.05))
}

// Holes отдаёт координаты отверстий в JSON.
func (h *GasketHandler) Holes(c fiber.Ctx) error {
	layout, err := h.build(c)
	if err != nil {
		return writeError(c, err)
	}

	resp := models.HolesResponse{
		Count:    layout.HoleCount(),
		Holes:    layout.Pattern.Holes,
		Outside:  layout.Outside,
		Warnings: layout.Warnings(),
		FileName: drawing.FileName(layout),
	}
	if layout.HoleCount() > 1 {
		resp.MinSpacing = layout.Pattern.MinSpacing()
	}

	setLayoutHeaders(c, layout)
	return c.JSON(resp)
}

// ListDrawings возвращает последние сгенерированные чертежи.
func (h *GasketHandler) ListDrawings(c fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
				Error:   "InvalidLimit",
				Message: "limit must be a positive integer",
			})
		}
		limit = n
	}

	list, err := h.repo.List(context.Background(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list drawings")
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetDrawing отдаёт ранее сохранённый DXF по id.
func (h *GasketHandler) GetDrawing(c fiber.Ctx) error {
	rec, err := h.repo.GetByID(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.ErrorResponse{
				Error:   "NotFound",
				Message: "drawing not found",
			})
		}
		return writeError(c, err)
	}

	if !h.storage.Contains(rec.Path) {
		h.log.Warn().Str("id", rec.ID).Str("path", rec.Path).Msg("drawing outside storage root")
		return c.Status(http.StatusNotFound).JSON(models.ErrorResponse{
			Error:   "NotFound",
			Message: "drawing file not found",
		})
	}

	data, err := os.ReadFile(rec.Path)
	if err != nil {
		h.log.Error().Err(err).Str("id", rec.ID).Msg("read drawing")
		return c.Status(http.StatusNotFound).JSON(models.ErrorResponse{
			Error:   "NotFound",
			Message: "drawing file not found",
		})
	}

	c.Set("X-Drawing-ID", rec.ID)
	c.Set("X-Hole-Count", strconv.Itoa(rec.HoleCount))
	c.Attachment(rec.FileName)
	c.Set(fiber.HeaderContentType, dxfContentType)
	return c.Send(data)
}

// ============================================================
// Helpers
// ============================================================

func (h *GasketHandler) build(c fiber.Ctx) (geometry.Layout, error) {
	raw, err := readRawParams(c)
	if err != nil {
		return geometry.Layout{}, err
	}

	params, err := geometry.ParseParams(raw)
	if err != nil {
		h.log.Debug().Err(err).Msg("rejected parameters")
		return geometry.Layout{}, err
	}

	layout, err := geometry.Build(params)
	if err != nil {
		h.log.Debug().Err(err).Msg("rejected geometry")
		return geometry.Layout{}, err
	}
	if warnings := layout.Warnings(); len(warnings) > 0 {
		h.log.Warn().Strs("warnings", warnings).Str("params", params.Slug()).Msg("advisory check failed")
	}
	return layout, nil
}

// readRawParams собирает входной контракт из query и, для POST с телом,
// из JSON объекта. Значения тела перекрывают query.
func readRawParams(c fiber.Ctx) (map[string]string, error) {
	raw := make(map[string]string)
	for k, v := range c.Queries() {
		raw[k] = v
	}

	if c.Method() != fiber.MethodPost || len(c.Body()) == 0 {
		return raw, nil
	}

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, errInvalidJSON
	}
	for k, v := range body {
		switch val := v.(type) {
		case nil:
		case float64:
			raw[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case string:
			raw[k] = val
		default:
			raw[k] = fmt.Sprint(val)
		}
	}
	return raw, nil
}

func setLayoutHeaders(c fiber.Ctx, layout geometry.Layout) {
	c.Set("X-Hole-Count", strconv.Itoa(layout.HoleCount()))
	c.Set("X-Holes-Outside-Band", strconv.Itoa(len(layout.Outside)))
}
