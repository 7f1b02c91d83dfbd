package cibil

import (
	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/utils"
)

// Ratio names. Declaration order here is the output order.
const (
	RatioUtilization      = "Utilization"
	RatioScore            = "Score/900"
	RatioDPDFlag          = "DPD Flag"
	RatioEnquiryIntensity = "Enquiry Intensity (12m)"
	RatioLatePayFrequency = "Late-Pay Frequency (12m)"
)

const scoreCeiling = 900.0

// ComputeRatios derives the five risk ratios from a completed metrics
// record. Each ratio is individually optional.
//
// Score/900, enquiry intensity and late-pay frequency deliberately treat
// a present-but-zero value as absent, matching the established behavior
// downstream consumers calibrate against. The DPD flag keys off presence
// alone.
func ComputeRatios(m dto.CreditMetrics) []dto.Ratio {
	util := utils.SafeDivide(m.TotalOutstandingBalance, m.TotalCreditLimit)

	var scoreRatio *float64
	if m.Score != nil && *m.Score != 0 {
		scoreRatio = utils.SafeDivide(floatPtr(float64(*m.Score)), floatPtr(scoreCeiling))
	}

	var dpdFlag *float64
	if m.MaxDPD != nil {
		v := 0.0
		if *m.MaxDPD > 0 {
			v = 1.0
		}
		dpdFlag = &v
	}

	var enquiryIntensity *float64
	if m.RecentEnquiries != nil && *m.RecentEnquiries != 0 {
		enquiryIntensity = utils.SafeDivide(floatPtr(float64(*m.RecentEnquiries)), floatPtr(12))
	}

	var latePayFrequency *float64
	if m.LatePayments12m != nil && *m.LatePayments12m != 0 {
		latePayFrequency = utils.SafeDivide(floatPtr(float64(*m.LatePayments12m)), floatPtr(12))
	}

	return []dto.Ratio{
		{Name: RatioUtilization, Value: util},
		{Name: RatioScore, Value: scoreRatio},
		{Name: RatioDPDFlag, Value: dpdFlag},
		{Name: RatioEnquiryIntensity, Value: enquiryIntensity},
		{Name: RatioLatePayFrequency, Value: latePayFrequency},
	}
}

func floatPtr(v float64) *float64 { return &v }
