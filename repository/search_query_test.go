package repository

import (
	"reflect"
	"strings"
	"testing"

	"lightbnb/models"
)

func int64p(v int64) *int64       { return &v }
func float64p(v float64) *float64 { return &v }

func TestBuildPropertySearch_NoFilters(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{}, 0)

	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no WHERE clause, got:\n%s", query)
	}
	if strings.Contains(query, "HAVING") {
		t.Errorf("expected no HAVING clause, got:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY cost_per_night") {
		t.Errorf("expected ascending cost ordering, got:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $1") {
		t.Errorf("expected LIMIT $1, got:\n%s", query)
	}
	if !reflect.DeepEqual(params, []interface{}{DefaultSearchLimit}) {
		t.Errorf("expected default limit param, got %v", params)
	}
}

func TestBuildPropertySearch_CityIsSubstringMatch(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{City: "Vancouver"}, 10)

	if !strings.Contains(query, "WHERE city LIKE $1") {
		t.Errorf("expected city predicate to open the WHERE chain, got:\n%s", query)
	}
	if params[0] != "%Vancouver%" {
		t.Errorf("expected wildcard-wrapped city, got %v", params[0])
	}
}

func TestBuildPropertySearch_SecondPredicateUsesAnd(t *testing.T) {
	query, _ := buildPropertySearch(models.PropertyFilter{
		City:    "Toronto",
		OwnerID: int64p(7),
	}, 10)

	if !strings.Contains(query, "WHERE city LIKE $1") {
		t.Errorf("expected city first, got:\n%s", query)
	}
	if !strings.Contains(query, "AND owner_id = $2") {
		t.Errorf("expected owner to join with AND, got:\n%s", query)
	}
}

func TestBuildPropertySearch_OwnerOnlyOpensWhere(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{OwnerID: int64p(3)}, 10)

	if !strings.Contains(query, "WHERE owner_id = $1") {
		t.Errorf("expected owner to open WHERE when city absent, got:\n%s", query)
	}
	if params[0] != int64(3) {
		t.Errorf("expected owner id 3, got %v", params[0])
	}
}

func TestBuildPropertySearch_PriceRangeConvertsToCents(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{
		MinPricePerNight: int64p(50),
		MaxPricePerNight: int64p(200),
	}, 10)

	if !strings.Contains(query, "WHERE cost_per_night >= $1 AND cost_per_night <= $2") {
		t.Errorf("expected inclusive price range, got:\n%s", query)
	}
	if params[0] != int64(5000) || params[1] != int64(20000) {
		t.Errorf("expected dollar amounts multiplied by 100, got %v", params)
	}
}

func TestBuildPropertySearch_PartialPriceRangeIgnored(t *testing.T) {
	query, _ := buildPropertySearch(models.PropertyFilter{
		MinPricePerNight: int64p(50),
	}, 10)

	if strings.Contains(query, "cost_per_night >=") {
		t.Errorf("min without max must not filter, got:\n%s", query)
	}
}

func TestBuildPropertySearch_RatingGoesToHaving(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{
		MinRating: float64p(4),
	}, 10)

	if strings.Contains(query, "WHERE") {
		t.Errorf("rating alone must not open a WHERE chain, got:\n%s", query)
	}
	if !strings.Contains(query, "HAVING AVG(property_reviews.rating) >= $1") {
		t.Errorf("expected rating as a post-aggregation filter, got:\n%s", query)
	}
	if params[0] != 4.0 {
		t.Errorf("expected rating param, got %v", params[0])
	}
}

func TestBuildPropertySearch_AllFiltersBindInEvaluationOrder(t *testing.T) {
	query, params := buildPropertySearch(models.PropertyFilter{
		City:             "Calgary",
		OwnerID:          int64p(9),
		MinPricePerNight: int64p(10),
		MaxPricePerNight: int64p(90),
		MinRating:        float64p(3.5),
	}, 25)

	want := []interface{}{"%Calgary%", int64(9), int64(1000), int64(9000), 3.5, 25}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("expected params %v, got %v", want, params)
	}
	if !strings.Contains(query, "LIMIT $6") {
		t.Errorf("expected limit bound last, got:\n%s", query)
	}
	// WHERE predicates precede GROUP BY, HAVING follows it.
	groupAt := strings.Index(query, "GROUP BY")
	havingAt := strings.Index(query, "HAVING")
	whereAt := strings.Index(query, "WHERE")
	if !(whereAt < groupAt && groupAt < havingAt) {
		t.Errorf("expected WHERE < GROUP BY < HAVING ordering, got:\n%s", query)
	}
}

func TestSearchQuery_HavingChainJoinsWithAnd(t *testing.T) {
	q := &searchQuery{selectFrom: "SELECT 1"}
	q.Having("a >= %s", 1)
	q.Having("b >= %s", 2)

	stmt, params := q.Build()
	if !strings.Contains(stmt, "HAVING a >= $1") || !strings.Contains(stmt, "AND b >= $2") {
		t.Errorf("unexpected having chain:\n%s", stmt)
	}
	if len(params) != 2 {
		t.Errorf("expected 2 params, got %v", params)
	}
}
