package meal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meal-finder/internal/core/mealdb"
	"meal-finder/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lookupFixture = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven.\n\nCook the chicken.\n",
	"strMealThumb":"https://example.com/52772.jpg",
	"strTags":"Meat,Casserole",
	"strYoutube":"https://youtube.com/watch?v=abc",
	"strIngredient1":"soy sauce",
	"strIngredient2":"water",
	"strIngredient10":"chicken breasts",
	"strMeasure1":"3/4 cup",
	"strMeasure2":"1/2 cup"
}]}`

func newDetailService(byID map[string]string) (*httptest.Server, *DetailService) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup.php" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		body, ok := byID[r.URL.Query().Get("i")]
		if !ok {
			fmt.Fprint(w, `{"meals":null}`)
			return
		}
		fmt.Fprint(w, body)
	}))

	client := mealdb.NewClient(&config.MealDBConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	return srv, NewDetailService(client)
}

func TestFetchDetail(t *testing.T) {
	srv, svc := newDetailService(map[string]string{"52772": lookupFixture})
	defer srv.Close()

	detail, err := svc.FetchDetail(context.Background(), "52772")
	require.NoError(t, err)

	assert.Equal(t, "52772", detail.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", detail.Name)
	assert.Equal(t, "Chicken", detail.Category)
	assert.Equal(t, "Japanese", detail.Area)
	assert.Equal(t, []string{"Meat", "Casserole"}, detail.Tags)
	assert.Equal(t, "https://youtube.com/watch?v=abc", detail.Video)

	// 編號欄位展開後保留欄位順序；未填欄位為空
	assert.Equal(t, "soy sauce", detail.Slots[0].Name)
	assert.Equal(t, "3/4 cup", detail.Slots[0].Measure)
	assert.Equal(t, "chicken breasts", detail.Slots[9].Name)
	assert.Equal(t, "", detail.Slots[9].Measure)
	assert.Equal(t, "", detail.Slots[19].Name)
}

func TestFetchDetailNotFound(t *testing.T) {
	srv, svc := newDetailService(nil)
	defer srv.Close()

	detail, err := svc.FetchDetail(context.Background(), "99999")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchDetailEmptyID(t *testing.T) {
	srv, svc := newDetailService(nil)
	defer srv.Close()

	detail, err := svc.FetchDetail(context.Background(), "")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestFetchDetailUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := mealdb.NewClient(&config.MealDBConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	svc := NewDetailService(client)

	detail, err := svc.FetchDetail(context.Background(), "52772")

	assert.Nil(t, detail)
	var upstream *mealdb.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
}

func TestFetchDetailConnectivityError(t *testing.T) {
	srv, svc := newDetailService(nil)
	srv.Close() // 立即關閉，模擬無法連線

	detail, err := svc.FetchDetail(context.Background(), "52772")

	assert.Nil(t, detail)
	var connectivity *mealdb.ConnectivityError
	assert.ErrorAs(t, err, &connectivity)
}
