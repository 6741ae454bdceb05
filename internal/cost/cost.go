// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package cost estimates monthly Azure spend for an accelerator from its tags.
//
// Prices are a static table in USD per month. Tags that are not in the table
// are ignored. When no tag is priced the estimate falls back to a baseline
// for the size, because a zero estimate would be misleading.
package cost

import "github.com/FlorKi610/accelerator-finder/internal/catalog"

// BaselineService labels the single breakdown entry used when no tag is priced.
const BaselineService = "Base Azure Infrastructure"

// Entry is one line of a cost breakdown.
type Entry struct {
	Service     string `json:"service"`
	MonthlyCost int    `json:"monthlyCost"`
}

type price struct {
	small, medium, large int
}

func (p price) forSize(size catalog.Size) int {
	switch size.OrDefault() {
	case catalog.SizeSmall:
		return p.small
	case catalog.SizeLarge:
		return p.large
	default:
		return p.medium
	}
}

// services keeps table order for Services().
var services = []string{
	"Azure OpenAI",
	"Azure AI Search",
	"Azure Functions",
	"Azure Blob Storage",
	"Azure Cosmos DB",
	"Azure SQL Database",
	"Azure Cache for Redis",
	"Azure Machine Learning",
	"Azure Cognitive Services",
	"Azure Bot Service",
	"Application Insights",
	"Key Vault",
	"Azure Entra ID",
}

var prices = map[string]price{
	"Azure OpenAI":             {45, 150, 400},
	"Azure AI Search":          {75, 250, 800},
	"Azure Functions":          {15, 70, 150},
	"Azure Blob Storage":       {5, 20, 50},
	"Azure Cosmos DB":          {30, 150, 500},
	"Azure SQL Database":       {20, 80, 300},
	"Azure Cache for Redis":    {15, 55, 180},
	"Azure Machine Learning":   {35, 120, 450},
	"Azure Cognitive Services": {30, 100, 300},
	"Azure Bot Service":        {10, 50, 200},
	"Application Insights":     {5, 20, 60},
	"Key Vault":                {3, 10, 25},
	"Azure Entra ID":           {0, 5, 15},
}

var baseline = price{25, 100, 350}

var descriptions = map[catalog.Size]string{
	catalog.SizeSmall:  "Basic deployment suitable for testing, development, or small teams (1-10 users)",
	catalog.SizeMedium: "Standard deployment for production use with moderate traffic (10-100 users)",
	catalog.SizeLarge:  "Enterprise-grade deployment for high traffic, large datasets, or critical workloads (100+ users)",
}

// MonthlyCost sums the priced tags for size, or returns the size baseline if
// none of the tags is priced.
func MonthlyCost(tags []string, size catalog.Size) int {
	total := 0
	matched := false
	for _, tag := range tags {
		if p, ok := prices[tag]; ok {
			total += p.forSize(size)
			matched = true
		}
	}
	if !matched {
		return baseline.forSize(size)
	}
	return total
}

// Breakdown lists one entry per priced tag in input order. Its entries always
// sum to MonthlyCost(tags, size).
func Breakdown(tags []string, size catalog.Size) []Entry {
	entries := make([]Entry, 0, len(tags))
	for _, tag := range tags {
		if p, ok := prices[tag]; ok {
			entries = append(entries, Entry{Service: tag, MonthlyCost: p.forSize(size)})
		}
	}
	if len(entries) == 0 {
		entries = append(entries, Entry{Service: BaselineService, MonthlyCost: baseline.forSize(size)})
	}
	return entries
}

// SizeDescription describes a deployment tier.
func SizeDescription(size catalog.Size) string {
	return descriptions[size.OrDefault()]
}

// Services returns the priced service names in table order.
func Services() []string {
	return append([]string(nil), services...)
}

// Tier is the estimate for one deployment size.
type Tier struct {
	Size        catalog.Size `json:"size"`
	Description string       `json:"description"`
	Breakdown   []Entry      `json:"breakdown"`
	Total       int          `json:"total"`
}

// Estimate returns the small, medium and large tiers for tags.
func Estimate(tags []string) []Tier {
	sizes := catalog.Sizes()
	tiers := make([]Tier, 0, len(sizes))
	for _, size := range sizes {
		tiers = append(tiers, Tier{
			Size:        size,
			Description: SizeDescription(size),
			Breakdown:   Breakdown(tags, size),
			Total:       MonthlyCost(tags, size),
		})
	}
	return tiers
}
