package clinics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type ClinicController struct {
	Log            *zap.Logger
	ClinicUsecase  ClinicUsecase
	InternalConfig *config.InternalConfig
}

func NewClinicController(logger *zap.Logger, clinicUsecase ClinicUsecase, internalConfig *config.InternalConfig) *ClinicController {
	return &ClinicController{
		Log:            logger,
		ClinicUsecase:  clinicUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ClinicController) GetAllClinics(w http.ResponseWriter, r *http.Request) {
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

	result, total, err := ctrl.ClinicUsecase.GetAllClinics(ctx, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetClinicsSuccess, pagination, result)
}

func (ctrl *ClinicController) GetClinicByID(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.GetClinicByID(ctx, clinicID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicSuccess, result)
}

func (ctrl *ClinicController) CreateClinic(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClinic)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateClinicRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.CreateClinic(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClinicSuccess, result)
}

func (ctrl *ClinicController) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

	request := new(requests.UpdateClinic)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateClinicRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.UpdateClinic(ctx, clinicID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicSuccess, result)
}

func (ctrl *ClinicController) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := ctrl.ClinicUsecase.DeleteClinic(ctx, clinicID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClinicSuccess, nil)
}

func (ctrl *ClinicController) AddDoctorsToClinic(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

	request := new(requests.AddDoctorsToClinic)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.AddDoctorsToClinic(ctx, clinicID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LinkDoctorsSuccess, result)
}

func (ctrl *ClinicController) UploadClinicImage(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.UploadClinicImage(ctx, clinicID, file, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicSuccess, result)
}

func (ctrl *ClinicController) UploadClinicVideos(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}

	maxVideoBytes := ctrl.InternalConfig.Media.VideoMaxUploadSizeInMB << 20
	if err := r.ParseMultipartForm(maxVideoBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	files := r.MultipartForm.File["videos"]
	labels := r.MultipartForm.Value["labels"]
	if len(files) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequiredFields(nil))
		return
	}

	for _, fileHeader := range files {
		if err := utils.ValidateVideoFile(fileHeader, ctrl.InternalConfig.Media.VideoMaxUploadSizeInMB); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.UploadClinicVideos(ctx, clinicID, labels, files)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicSuccess, result)
}

func (ctrl *ClinicController) DeleteClinicVideo(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "clinicId"))
		return
	}
	videoID := chi.URLParam(r, "videoId")
	if err := utils.ValidateUrlParamID(videoID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "videoId"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := ctrl.ClinicUsecase.DeleteClinicVideo(ctx, clinicID, videoID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClinicVideoSuccess, nil)
}
