package awp5

import (
	"reflect"
	"testing"
)

type parseRetentionPolicyTest struct {
	s      string
	result RetentionPolicy
}

func TestParseRetentionPolicy(t *testing.T) {
	tests := []parseRetentionPolicyTest{
		{s: "hourly=24", result: RetentionPolicy{Interval: 3600, Count: 24}},
		{s: "daily=7", result: RetentionPolicy{Interval: 24 * 3600, Count: 7}},
		{s: "weekly=4", result: RetentionPolicy{Interval: 7 * 24 * 3600, Count: 4}},
		{s: "monthly=12", result: RetentionPolicy{Interval: 30 * 24 * 3600, Count: 12}},
		{s: "yearly=2", result: RetentionPolicy{Interval: 365 * 24 * 3600, Count: 2}},
		{s: "1h=2", result: RetentionPolicy{Interval: 3600, Count: 2}},
		{s: "3d=4", result: RetentionPolicy{Interval: 3 * 24 * 3600, Count: 4}},
		{s: "5w=6", result: RetentionPolicy{Interval: 5 * 7 * 24 * 3600, Count: 6}},
		{s: "7m=8", result: RetentionPolicy{Interval: 7 * 30 * 24 * 3600, Count: 8}},
		{s: "9y=10", result: RetentionPolicy{Interval: 9 * 365 * 24 * 3600, Count: 10}},
		{s: "11=12", result: RetentionPolicy{Interval: 11, Count: 12}},
	}

	for _, test := range tests {
		result, err := ParseRetentionPolicy(test.s)
		if err != nil {
			t.Errorf("failed to parse retention policy: %v: %v", test.s, err)
		} else if !reflect.DeepEqual(result, test.result) {
			t.Errorf("do not match: %v %v (from %v)", test.result, result, test.s)
		}
	}

	for _, s := range []string{"daily", "=7", "daily=x", "2x=4"} {
		if _, err := ParseRetentionPolicy(s); err == nil {
			t.Errorf("expected an error for %v", s)
		}
	}
}

func TestRetentionPolicy(t *testing.T) {
	var bundles []Bundle
	var policies []RetentionPolicy
	var retained, expectedRetained map[string]struct{}
	var err error

	// Single policy
	bundles = []Bundle{
		{Stamp: "20210131T000000.000", Scope: "jobs"},
		{Stamp: "20210130T120000.000", Scope: "jobs"},
		{Stamp: "20210130T000002.000", Scope: "jobs"},
		{Stamp: "20210129T000001.000", Scope: "jobs"},
		{Stamp: "20210128T000000.000", Scope: "jobs"},
		{Stamp: "20210127T000000.000", Scope: "jobs"},
	}
	policies = []RetentionPolicy{
		{Interval: 24 * 3600, Count: 4},
	}
	expectedRetained = map[string]struct{}{
		bundles[0].Name(): {},
		bundles[2].Name(): {},
		bundles[3].Name(): {},
		bundles[4].Name(): {},
	}

	retained, err = ApplyRetentionPolicies(policies, bundles)
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(retained, expectedRetained) {
		t.Errorf("expected: %v, got: %v", expectedRetained, retained)
	}

	// Merged policies
	policies = []RetentionPolicy{
		{Interval: 24 * 3600, Count: 3},
		{Interval: 2 * 24 * 3600, Count: 3},
	}
	expectedRetained = map[string]struct{}{
		bundles[0].Name(): {},
		bundles[2].Name(): {},
		bundles[3].Name(): {},
		bundles[5].Name(): {},
	}

	retained, err = ApplyRetentionPolicies(policies, bundles)
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(retained, expectedRetained) {
		t.Errorf("expected: %v, got: %v", expectedRetained, retained)
	}
}

func TestPrunedBundles(t *testing.T) {
	bundles := []Bundle{
		{Stamp: "20210131T000000.000", Scope: "jobs"},
		{Stamp: "20210130T120000.000", Scope: "jobs"},
		{Stamp: "20210130T000002.000", Scope: "jobs"},
		{Stamp: "20210129T000001.000", Scope: "jobs"},
		{Stamp: "20210128T000000.000", Scope: "jobs"},
		{Stamp: "20210127T000000.000", Scope: "jobs"},
	}
	policies := []RetentionPolicy{
		{Interval: 24 * 3600, Count: 2},
	}
	expectedPruned := []Bundle{bundles[1], bundles[3], bundles[4], bundles[5]}

	pruned, err := GetPrunedBundles(bundles, policies)
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(pruned, expectedPruned) {
		t.Errorf("expected: %v, got: %v", expectedPruned, pruned)
	}

	// Empty policy retains everything
	pruned, err = GetPrunedBundles(bundles, nil)
	if err != nil {
		t.Error(err)
	} else if pruned != nil {
		t.Errorf("expected: nil, got: %v", pruned)
	}
}
