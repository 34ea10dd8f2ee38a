package awp5

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var intervalAliases = map[string]string{
	"yearly":  "1y",
	"monthly": "1m",
	"weekly":  "1w",
	"daily":   "1d",
	"hourly":  "1h",
}

type RetentionPolicy struct {
	Interval int // Minimum interval between two retained bundles
	Count    int // Maximum number of retained bundles
}

// Parse an interval. Can be expressed in hours, days, weeks, months or years.
// Return the time interval in seconds.
func ParseInterval(intv string) (int, error) {
	alias, ok := intervalAliases[intv]
	if ok {
		intv = alias
	}

	if len(intv) == 0 {
		return 0, fmt.Errorf("empty interval")
	}

	var result int
	var suffix byte
	var err error
	if strings.Contains("ymwdh", string(intv[len(intv)-1])) {
		result, err = strconv.Atoi(intv[:len(intv)-1])
		suffix = intv[len(intv)-1]
	} else {
		result, err = strconv.Atoi(intv)
	}
	if err != nil {
		return 0, err
	}

	switch suffix {
	case 'y':
		result *= 365 * 24 * 3600
	case 'm':
		result *= 30 * 24 * 3600
	case 'w':
		result *= 7 * 24 * 3600
	case 'd':
		result *= 24 * 3600
	case 'h':
		result *= 3600
	default:
		if suffix != 0 {
			return 0, fmt.Errorf("invalid suffix: %v", suffix)
		}
	}

	return result, nil
}

// Parse a policy of the form interval=count, e.g. "daily=7" or "4w=2"
func ParseRetentionPolicy(policy string) (RetentionPolicy, error) {
	kv := strings.SplitN(policy, "=", 2)
	if len(kv) != 2 {
		return RetentionPolicy{}, fmt.Errorf("invalid item")
	}

	count, err := strconv.Atoi(strings.TrimSpace(kv[1]))
	if err != nil {
		return RetentionPolicy{}, err
	}

	intv, err := ParseInterval(strings.TrimSpace(kv[0]))
	if err != nil {
		return RetentionPolicy{}, err
	}

	return RetentionPolicy{Interval: intv, Count: count}, nil
}

// Apply retention policies to a set of bundles sorted from most recent
// to least recent, returning the set of retained bundle names
func ApplyRetentionPolicies(policies []RetentionPolicy, bundles []Bundle) (map[string]struct{}, error) {
	retained := make(map[string]struct{})
	for _, policy := range policies {
		var lastRetainedTime time.Time
		retainedCount := 0
		for _, bundle := range bundles {
			if retainedCount >= policy.Count {
				break
			}
			t, err := bundle.Time()
			if err != nil {
				return nil, err
			}
			if retainedCount == 0 || lastRetainedTime.Sub(t).Seconds() >= 0.9*float64(policy.Interval) {
				lastRetainedTime = t
				retained[bundle.Name()] = struct{}{}
				retainedCount++
			}
		}
	}
	return retained, nil
}

// Get bundles from a destination not retained by a given retention policy
func GetPrunedBundles(bundles []Bundle, policies []RetentionPolicy) ([]Bundle, error) {
	if len(policies) == 0 {
		// Default policy is to retain everything
		logrus.Warn("no retention policies set for destination, keeping everything")
		return nil, nil
	}

	retained, err := ApplyRetentionPolicies(policies, bundles)
	if err != nil {
		return nil, err
	}

	pruned := make([]Bundle, 0, len(bundles)-len(retained))
	for _, b := range bundles {
		if _, ok := retained[b.Name()]; !ok {
			pruned = append(pruned, b)
		}
	}

	return pruned, nil
}

// Prune bundles from a destination according to a retention policy
func PruneBundles(dst Destination, bundles []Bundle, policies []RetentionPolicy) error {
	prunedBundles, err := GetPrunedBundles(bundles, policies)
	if err != nil {
		return err
	}

	for _, b := range prunedBundles {
		log := logrus.WithFields(logrus.Fields{"bundle": b.Name()})
		log.Printf("removing bundle")
		err = dst.RemoveBundle(b)
		if err != nil {
			log.Warnf("cannot prune bundle: %v", err)
		}
	}

	return nil
}
