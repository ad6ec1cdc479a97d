package admins

import (
	"errors"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListPackages returns every package, active or not, for the back office
func ListPackages(c *fiber.Ctx) error {
	var packages []models.InvestmentPackage
	if err := database.Database.Db.Order("created_at DESC").Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Packages fetched!", packages)
}

// CreatePackage adds a new investment package
func CreatePackage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPackage").(*services.PackageInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	pkg, err := services.CreatePackage(database.Database.Db, *reqData)
	if err != nil {
		log.Printf("Error creating package: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Package created successfully!", pkg)
}

// UpdatePackage edits an existing package
func UpdatePackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package ID!", nil)
	}

	reqData, ok := c.Locals("validatedPackage").(*services.PackageInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	pkg, err := services.UpdatePackage(database.Database.Db, uint(id), *reqData)
	if err != nil {
		if errors.Is(err, services.ErrPackageInactive) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
		}
		log.Printf("Error updating package: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package updated successfully!", pkg)
}

// DeletePackage removes a package with no active investments
func DeletePackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package ID!", nil)
	}

	if err := services.DeletePackage(database.Database.Db, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrPackageInactive):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
		case errors.Is(err, services.ErrPackageInUse):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Package cannot be deleted: it has active investments.", nil)
		default:
			log.Printf("Error deleting package: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete package!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package deleted successfully!", nil)
}
