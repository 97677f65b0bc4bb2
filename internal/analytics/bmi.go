package analytics

import (
	"errors"
	"math"
)

type MeasurementUnit string

const (
	UnitMetric   MeasurementUnit = "metric"
	UnitImperial MeasurementUnit = "imperial"
)

var (
	ErrInvalidMeasurement = errors.New("weight and height must be positive")
	ErrUnknownUnit        = errors.New("unknown measurement unit")
)

type BMIResult struct {
	BMI        float64  `json:"bmi"`
	Category   string   `json:"category"`
	HealthTips []string `json:"healthTips"`
}

// CalculateBMI computes the body mass index from weight and height. Metric
// takes kilograms and centimeters, imperial takes pounds and inches. The
// returned value is rounded to one decimal, the category is derived from
// the exact value.
func CalculateBMI(weight, height float64, unit MeasurementUnit) (*BMIResult, error) {
	if weight <= 0 || height <= 0 {
		return nil, ErrInvalidMeasurement
	}

	var bmi float64
	switch unit {
	case UnitMetric:
		heightMeters := height / 100
		bmi = weight / (heightMeters * heightMeters)
	case UnitImperial:
		bmi = weight / (height * height) * 703
	default:
		return nil, ErrUnknownUnit
	}

	return &BMIResult{
		BMI:        math.Round(bmi*10) / 10,
		Category:   bmiCategory(bmi),
		HealthTips: bmiHealthTips(bmi),
	}, nil
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func bmiHealthTips(bmi float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Consider consulting with a healthcare provider about healthy weight gain",
			"Focus on nutrient-dense foods and strength training",
			"Ensure adequate protein intake for muscle building",
		}
	case bmi < 25:
		return []string{
			"Maintain your current healthy lifestyle",
			"Continue regular exercise and balanced nutrition",
			"Monitor your weight regularly to stay in this range",
		}
	case bmi < 30:
		return []string{
			"Consider gradual weight loss through diet and exercise",
			"Aim for 1-2 pounds of weight loss per week",
			"Focus on portion control and increased physical activity",
		}
	default:
		return []string{
			"Consult with a healthcare provider for a comprehensive weight management plan",
			"Consider working with a registered dietitian",
			"Start with low-impact exercises and gradually increase intensity",
		}
	}
}
