package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/cursorimages"
)

func attachCursorImageRoutes(router chi.Router, middlewares *middlewares.Middlewares, cursorImageController *cursorimages.CursorImageController) {
	router.Get("/", cursorImageController.GetActiveCursorImages)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/all", cursorImageController.GetAllCursorImages)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/{imageId}", cursorImageController.GetCursorImageByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", cursorImageController.CreateCursorImage)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{imageId}", cursorImageController.UpdateCursorImage)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{imageId}", cursorImageController.DeleteCursorImage)
}
