package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCategoryFlow_CRUDOperations(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "catcrud@test.com", "password123")

	// Create a category beyond the seeded defaults
	rec := app.request("POST", "/api/v1/categories", `{"name":"Subscriptions"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	categoryID := category["id"].(string)
	// Appended after the six defaults
	if category["sort_order"].(float64) != 7 {
		t.Errorf("expected sort_order 7, got %v", category["sort_order"])
	}

	// Get category
	rec = app.request("GET", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	fetched := parseJSON(t, rec)["category"].(map[string]interface{})
	if fetched["name"] != "Subscriptions" {
		t.Errorf("expected name 'Subscriptions', got %v", fetched["name"])
	}

	// Rename and reorder
	rec = app.request("PUT", "/api/v1/categories/"+categoryID,
		`{"name":"Streaming","sort_order":1}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["category"].(map[string]interface{})
	if updated["name"] != "Streaming" {
		t.Errorf("expected name 'Streaming', got %v", updated["name"])
	}
	if updated["sort_order"].(float64) != 1 {
		t.Errorf("expected sort_order 1, got %v", updated["sort_order"])
	}

	// List: reordered category moved ahead of the untouched tail
	rec = app.request("GET", "/api/v1/categories", "", token)
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(categories))
	}
	last := categories[6].(map[string]interface{})
	if last["name"] == "Streaming" {
		t.Error("expected Streaming to move off the last position after reorder")
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Verify deleted (should 404)
	rec = app.request("GET", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after deletion, got %d", rec.Code)
	}
}

func TestCategoryFlow_DuplicateName(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "catdup@test.com", "password123")

	// "Food" is already seeded
	rec := app.request("POST", "/api/v1/categories", `{"name":"Food"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_NAME" {
		t.Errorf("expected DUPLICATE_NAME, got %v", errObj["code"])
	}
}

func TestCategoryFlow_DeleteRefusedWhileReferenced(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "catref@test.com", "password123")

	categoryID := app.createCategory(t, token, "Hobbies")
	expenseID := app.createExpense(t, token, categoryID, 1200, "2024-06-05")

	// Delete is refused while an expense references the category
	rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 while referenced, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "CATEGORY_IN_USE" {
		t.Errorf("expected CATEGORY_IN_USE, got %v", errObj["code"])
	}

	// A planned expense alone also blocks deletion
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting expense, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/planned-expenses",
		fmt.Sprintf(`{"category_id":%q,"amount":3000,"planned_date":"2024-07-01"}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	planned := parseJSON(t, rec)["planned_expense"].(map[string]interface{})
	plannedID := planned["id"].(string)

	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 with planned reference, got %d: %s", rec.Code, rec.Body.String())
	}

	// After removing the last reference, deletion succeeds
	rec = app.request("DELETE", "/api/v1/planned-expenses/"+plannedID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting planned expense, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after references removed, got %d: %s", rec.Code, rec.Body.String())
	}
}
