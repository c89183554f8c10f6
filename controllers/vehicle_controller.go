package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vehicle-registry-api/repositories"
	"vehicle-registry-api/utils"
)

type VehicleController struct {
	vehicles *repositories.VehicleRepository
	stats    *repositories.StatsRepository
}

func NewVehicleController(vehicles *repositories.VehicleRepository, stats *repositories.StatsRepository) *VehicleController {
	return &VehicleController{vehicles: vehicles, stats: stats}
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req repositories.VehicleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}

	vehicle, err := vc.vehicles.Create(userID, req)
	if err != nil {
		vc.sendVehicleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vehicle registered successfully",
		"vehicle": vehicle,
	})
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := vc.vehicles.List(userID, repositories.ListOptions{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		utils.SendInternalError(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	userID := c.GetString("user_id")
	vehicleID := c.Param("id")

	vehicle, err := vc.vehicles.GetByID(userID, vehicleID)
	if err != nil {
		vc.sendVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	userID := c.GetString("user_id")
	vehicleID := c.Param("id")

	var req repositories.VehicleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}

	vehicle, err := vc.vehicles.Update(userID, vehicleID, req)
	if err != nil {
		vc.sendVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle updated successfully",
		"vehicle": vehicle,
	})
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	userID := c.GetString("user_id")
	vehicleID := c.Param("id")

	vehicle, err := vc.vehicles.Delete(userID, vehicleID)
	if err != nil {
		vc.sendVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle deleted successfully",
		"vehicle": vehicle,
	})
}

func (vc *VehicleController) GetStatistics(c *gin.Context) {
	userID := c.GetString("user_id")

	summary, err := vc.stats.Summarize(userID)
	if err != nil {
		utils.SendInternalError(c)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (vc *VehicleController) sendVehicleError(c *gin.Context, err error) {
	var validationErr *repositories.ValidationError
	var duplicateErr *repositories.DuplicateKeyError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, utils.CodeNotFound, "Vehicle not found")
	case errors.As(err, &validationErr):
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, validationErr.Message)
	case errors.As(err, &duplicateErr):
		utils.SendDuplicateKey(c, duplicateErr.Error(), duplicateErr.Field)
	default:
		utils.SendInternalError(c)
	}
}
