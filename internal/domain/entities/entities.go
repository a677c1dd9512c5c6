package entities

import (
	"errors"
)

// Common errors
var (
	ErrSetupNotFound = errors.New("setup not found")
	ErrPlantNotFound = errors.New("plant not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidDate   = errors.New("invalid date")
)

// Enums and types
type SystemType string

const (
	SystemTypeHydroponic SystemType = "Hydroponic"
	SystemTypeAquaponic  SystemType = "Aquaponic"
	SystemTypeAeroponic  SystemType = "Aeroponic"
	SystemTypeKratky     SystemType = "Kratky"
	SystemTypeDWC        SystemType = "DWC"
	SystemTypeNFT        SystemType = "NFT"
)

func (t SystemType) IsValid() bool {
	switch t {
	case SystemTypeHydroponic, SystemTypeAquaponic, SystemTypeAeroponic,
		SystemTypeKratky, SystemTypeDWC, SystemTypeNFT:
		return true
	}
	return false
}

type PlantStatus string

const (
	PlantStatusHealthy        PlantStatus = "Healthy"
	PlantStatusNeedsAttention PlantStatus = "Needs Attention"
	PlantStatusStruggling     PlantStatus = "Struggling"
	PlantStatusHarvested      PlantStatus = "Harvested"
)

func (s PlantStatus) IsValid() bool {
	switch s {
	case PlantStatusHealthy, PlantStatusNeedsAttention, PlantStatusStruggling, PlantStatusHarvested:
		return true
	}
	return false
}

type EquipmentCategory string

const (
	EquipmentCategoryLighting   EquipmentCategory = "Lighting"
	EquipmentCategoryPump       EquipmentCategory = "Pump"
	EquipmentCategoryMonitoring EquipmentCategory = "Monitoring"
	EquipmentCategoryStructural EquipmentCategory = "Structural"
	EquipmentCategoryOther      EquipmentCategory = "Other"
)

func (c EquipmentCategory) IsValid() bool {
	switch c {
	case EquipmentCategoryLighting, EquipmentCategoryPump, EquipmentCategoryMonitoring,
		EquipmentCategoryStructural, EquipmentCategoryOther:
		return true
	}
	return false
}

type EquipmentStatus string

const (
	EquipmentStatusActive EquipmentStatus = "Active"
	EquipmentStatusBackup EquipmentStatus = "Backup"
	EquipmentStatusBroken EquipmentStatus = "Broken"
)

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusActive, EquipmentStatusBackup, EquipmentStatusBroken:
		return true
	}
	return false
}

type IngredientPurpose string

const (
	IngredientPurposeNutrient       IngredientPurpose = "Nutrient"
	IngredientPurposePHAdjuster     IngredientPurpose = "pH Adjuster"
	IngredientPurposeAdditive       IngredientPurpose = "Additive"
	IngredientPurposeWaterTreatment IngredientPurpose = "Water Treatment"
)

func (p IngredientPurpose) IsValid() bool {
	switch p {
	case IngredientPurposeNutrient, IngredientPurposePHAdjuster, IngredientPurposeAdditive,
		IngredientPurposeWaterTreatment:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
