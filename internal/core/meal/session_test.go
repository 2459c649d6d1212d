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

// newSessionFixture 建立一個上游伺服器，"slow" 食材會阻塞直到 release 關閉
func newSessionFixture(release <-chan struct{}) (*httptest.Server, *Session) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ingredient := r.URL.Query().Get("i")
		if ingredient == "slow" && release != nil {
			<-release
		}
		w.Header().Set("Content-Type", "application/json")
		switch ingredient {
		case "none":
			fmt.Fprint(w, `{"meals":null}`)
		default:
			fmt.Fprintf(w, `{"meals":[{"idMeal":"id-%s","strMeal":"%s meal","strMealThumb":""}]}`, ingredient, ingredient)
		}
	}))

	client := mealdb.NewClient(&config.MealDBConfig{
		BaseURL: srv.URL,
		Timeout: 10 * time.Second,
	})
	return srv, NewSession(NewSearchService(client))
}

func TestSessionSubmitStoresLatestOutcome(t *testing.T) {
	srv, session := newSessionFixture(nil)
	defer srv.Close()

	done := session.Submit(context.Background(), "beef")
	require.NotNil(t, done)

	state := <-done
	require.NoError(t, state.Err)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "id-beef", state.Results[0].ID)

	current := session.Current()
	assert.Equal(t, state, current)
	assert.False(t, current.Searching)
}

func TestSessionEmptyQueryIsNoOp(t *testing.T) {
	srv, session := newSessionFixture(nil)
	defer srv.Close()

	before := session.Current()
	done := session.Submit(context.Background(), "  , ,")

	assert.Nil(t, done)
	assert.Equal(t, before, session.Current())
}

func TestSessionDiscardsStaleResults(t *testing.T) {
	release := make(chan struct{})
	srv, session := newSessionFixture(release)
	defer srv.Close()

	// 第一次搜尋被上游卡住
	slowDone := session.Submit(context.Background(), "slow")
	require.NotNil(t, slowDone)

	// 第二次搜尋先完成，成為最新世代
	fastDone := session.Submit(context.Background(), "beef")
	fastState := <-fastDone
	require.NoError(t, fastState.Err)

	// 放行第一次搜尋；其結果世代已過期，必須被捨棄
	close(release)
	slowState := <-slowDone
	assert.Less(t, slowState.Generation, fastState.Generation)

	current := session.Current()
	assert.Equal(t, fastState.Generation, current.Generation)
	require.Len(t, current.Results, 1)
	assert.Equal(t, "id-beef", current.Results[0].ID)
}

func TestSessionErrorClearsResults(t *testing.T) {
	srv, session := newSessionFixture(nil)
	defer srv.Close()

	state := <-session.Submit(context.Background(), "beef")
	require.NoError(t, state.Err)
	require.NotEmpty(t, state.Results)

	// 查無結果的搜尋必須清空先前的結果列表
	state = <-session.Submit(context.Background(), "none")
	var noResults *NoResultsError
	require.ErrorAs(t, state.Err, &noResults)
	assert.Empty(t, state.Results)
	assert.Empty(t, session.Current().Results)
}
