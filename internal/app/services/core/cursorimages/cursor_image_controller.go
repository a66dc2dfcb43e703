package cursorimages

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type CursorImageController struct {
	Log                *zap.Logger
	CursorImageUsecase CursorImageUsecase
	InternalConfig     *config.InternalConfig
}

func NewCursorImageController(logger *zap.Logger, cursorImageUsecase CursorImageUsecase, internalConfig *config.InternalConfig) *CursorImageController {
	return &CursorImageController{
		Log:                logger,
		CursorImageUsecase: cursorImageUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *CursorImageController) GetAllCursorImages(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.CursorImageUsecase.GetAllCursorImages(ctx, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetCursorImagesSuccess, pagination, result)
}

func (ctrl *CursorImageController) GetActiveCursorImages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CursorImageUsecase.GetActiveCursorImages(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCursorImagesSuccess, result)
}

func (ctrl *CursorImageController) GetCursorImageByID(w http.ResponseWriter, r *http.Request) {
	cursorImageID := chi.URLParam(r, "imageId")
	if err := utils.ValidateUrlParamID(cursorImageID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "imageId"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CursorImageUsecase.GetCursorImageByID(ctx, cursorImageID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCursorImageSuccess, result)
}

func (ctrl *CursorImageController) CreateCursorImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImageFile(fileHeader, ctrl.InternalConfig.Media.ImageMaxUploadSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	request, err := buildCursorImageFormRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateCursorImageRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	result, err := ctrl.CursorImageUsecase.CreateCursorImage(ctx, request, file, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCursorImageSuccess, result)
}

func (ctrl *CursorImageController) UpdateCursorImage(w http.ResponseWriter, r *http.Request) {
	cursorImageID := chi.URLParam(r, "imageId")
	if err := utils.ValidateUrlParamID(cursorImageID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "imageId"))
		return
	}

	if err := r.ParseMultipartForm(int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	// The image file is optional on update.
	var (
		file       multipart.File
		fileHeader *multipart.FileHeader
	)
	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		if err := utils.ValidateImageFile(fileHeader, ctrl.InternalConfig.Media.ImageMaxUploadSizeInMB); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}
	} else if err != http.ErrMissingFile {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UpdateCursorImage{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if value := r.FormValue("order"); value != "" {
		order, err := strconv.Atoi(value)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequiredFields(err))
			return
		}
		request.Order = &order
	}
	if value := r.FormValue("isActive"); value != "" {
		isActive, err := strconv.ParseBool(value)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequiredFields(err))
			return
		}
		request.IsActive = &isActive
	}

	utils.SanitizeUpdateCursorImageRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	var upload io.Reader
	if file != nil {
		upload = file
	}

	result, err := ctrl.CursorImageUsecase.UpdateCursorImage(ctx, cursorImageID, request, upload, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCursorImageSuccess, result)
}

func (ctrl *CursorImageController) DeleteCursorImage(w http.ResponseWriter, r *http.Request) {
	cursorImageID := chi.URLParam(r, "imageId")
	if err := utils.ValidateUrlParamID(cursorImageID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "imageId"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := ctrl.CursorImageUsecase.DeleteCursorImage(ctx, cursorImageID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCursorImageSuccess, nil)
}

func buildCursorImageFormRequest(r *http.Request) (*requests.CreateCursorImage, error) {
	request := &requests.CreateCursorImage{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	orderValue := r.FormValue("order")
	if orderValue == "" {
		return nil, exceptions.ErrMissingRequiredFields(nil)
	}
	order, err := strconv.Atoi(orderValue)
	if err != nil {
		return nil, exceptions.ErrMissingRequiredFields(err)
	}
	request.Order = &order

	if value := r.FormValue("isActive"); value != "" {
		isActive, err := strconv.ParseBool(value)
		if err != nil {
			return nil, exceptions.ErrMissingRequiredFields(err)
		}
		request.IsActive = &isActive
	}

	return request, nil
}
