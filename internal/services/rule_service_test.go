package services

import (
	"context"
	"testing"

	"skyshield/bastion/internal/common"
	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	gormModels "skyshield/bastion/internal/models/gorm"
)

func TestRuleService_EnabledRules_FiltersAndOrders(t *testing.T) {
	db, gdb := setupTestDB(t)

	rows := []gormModels.ClassificationRule{
		{ParameterName: "speed_kts", Operator: ">", Value: "600", AssignedThreatLevel: string(constants.ThreatCritical), IsEnabled: true},
		{ParameterName: "speed_kts", Operator: ">", Value: "400", AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: false},
		{ParameterName: "altitude_ft", Operator: "<", Value: "2000", AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: true},
	}
	if err := gdb.Create(&rows).Error; err != nil {
		t.Fatalf("Failed to seed rules: %v", err)
	}

	svc := NewRuleService(repositories.NewRuleRepository(db), common.NewCacheService(60, 600))

	rules, err := svc.EnabledRules(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Expected 2 enabled rules, got %d", len(rules))
	}
	if rules[0].RuleID > rules[1].RuleID {
		t.Error("Expected rules in rule_id order")
	}
	for _, r := range rules {
		if !r.IsEnabled {
			t.Errorf("Disabled rule %d leaked into enabled set", r.RuleID)
		}
	}
}

func TestRuleService_EnabledRules_Cached(t *testing.T) {
	db, gdb := setupTestDB(t)

	rule := gormModels.ClassificationRule{
		ParameterName: "speed_kts", Operator: ">", Value: "600",
		AssignedThreatLevel: string(constants.ThreatCritical), IsEnabled: true,
	}
	if err := gdb.Create(&rule).Error; err != nil {
		t.Fatalf("Failed to seed rule: %v", err)
	}

	svc := NewRuleService(repositories.NewRuleRepository(db), common.NewCacheService(60, 600))

	first, err := svc.EnabledRules(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(first))
	}

	// New rule lands in the table but not in the cached set
	extra := gormModels.ClassificationRule{
		ParameterName: "altitude_ft", Operator: "<", Value: "2000",
		AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: true,
	}
	if err := gdb.Create(&extra).Error; err != nil {
		t.Fatalf("Failed to seed extra rule: %v", err)
	}

	second, err := svc.EnabledRules(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(second) != 1 {
		t.Errorf("Expected cached rule set of 1, got %d", len(second))
	}
}

func TestRuleService_ListAll_IncludesDisabled(t *testing.T) {
	db, gdb := setupTestDB(t)

	rows := []gormModels.ClassificationRule{
		{ParameterName: "speed_kts", Operator: ">", Value: "600", AssignedThreatLevel: string(constants.ThreatCritical), IsEnabled: true},
		{ParameterName: "speed_kts", Operator: ">", Value: "400", AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: false},
	}
	if err := gdb.Create(&rows).Error; err != nil {
		t.Fatalf("Failed to seed rules: %v", err)
	}

	svc := NewRuleService(repositories.NewRuleRepository(db), common.NewCacheService(60, 600))

	rules, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(rules))
	}
}
