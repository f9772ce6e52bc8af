package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	composerrepo "records-api/internal/repository/composer"
	customerrepo "records-api/internal/repository/customer"
	personrepo "records-api/internal/repository/person"
	teamrepo "records-api/internal/repository/team"
	userrepo "records-api/internal/repository/user"
	composersvc "records-api/internal/service/composer"
	customersvc "records-api/internal/service/customer"
	personsvc "records-api/internal/service/person"
	teamsvc "records-api/internal/service/team"
	usersvc "records-api/internal/service/user"
	"records-api/internal/storage"
)

func newMemoryDeps(t *testing.T) Deps {
	t.Helper()
	store := storage.NewMemory()
	hasher, err := usersvc.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return Deps{
		Composers: composersvc.New(composerrepo.New(store.Composers)),
		Persons:   personsvc.New(personrepo.New(store.Persons)),
		Teams:     teamsvc.New(teamrepo.New(store.Teams)),
		Customers: customersvc.New(customerrepo.New(store.Customers)),
		Users:     usersvc.New(userrepo.New(store.Users), hasher),
		Store:     store,
	}
}

func TestAPI_CustomerInvoices(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodPost, "/api/customers", `{"firstName":"Jo","lastName":"March","userName":"jmarch"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"invoices":[]`)

	rec = doJSON(router, http.MethodPost, "/api/customers", `{"firstName":"Amy","lastName":"March","userName":"jmarch"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Username is already in use", decodeMessage(t, rec))

	invoice := `{"subtotal":20,"tax":1.5,"dateCreated":"2024-03-01","lineItems":[{"name":"Ink","price":10,"quantity":2}]}`
	rec = doJSON(router, http.MethodPost, "/api/customers/jmarch/invoices", invoice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Invoice added to MongoDB","newInvoice":{"subtotal":20,"tax":1.5,"dateCreated":"2024-03-01","dateShipped":"","lineItems":[{"name":"Ink","price":10,"quantity":2}]}}`, rec.Body.String())

	rec = doJSON(router, http.MethodPost, "/api/customers/jmarch/invoices", `{"subtotal":1,"tax":0,"dateCreated":"2024-03-02","lineItems":[]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(router, http.MethodGet, "/api/customers/jmarch/invoices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var invoices []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoices))
	require.Len(t, invoices, 2)
	assert.Equal(t, "2024-03-02", invoices[1]["dateCreated"])

	rec = doJSON(router, http.MethodPost, "/api/customers/jmarch/invoices", `{"subtotal":1,"tax":0,"dateCreated":"2024-03-02"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "lineItems is required", decodeMessage(t, rec))

	rec = doJSON(router, http.MethodGet, "/api/customers/ghost/invoices", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid userName", decodeMessage(t, rec))

	rec = doJSON(router, http.MethodPost, "/api/customers/ghost/invoices", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid userName", decodeMessage(t, rec))
}

func TestAPI_Persons(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodGet, "/api/persons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	body := `{"firstName":"Ada","lastName":"Lovelace","birthDate":"1815-12-10","roles":[{"text":"writer"}],"dependents":[{"firstName":"Byron","lastName":"King"}]}`
	rec = doJSON(router, http.MethodPost, "/api/persons", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(router, http.MethodPost, "/api/persons", `{"firstName":"A","lastName":"B","roles":[{}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "roles[0].text is required", decodeMessage(t, rec))

	rec = doJSON(router, http.MethodGet, "/api/persons", "")
	var persons []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &persons))
	require.Len(t, persons, 1)
	assert.Equal(t, "Lovelace", persons[0]["lastName"])
	assert.NotEmpty(t, persons[0]["_id"])
}

func TestAPI_TeamLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodPost, "/api/teams", `{"name":"Comets","mascot":"Blaze"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var team map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	id, _ := team["_id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(router, http.MethodPost, "/api/teams/"+id+"/players", `{"firstName":"Ann","lastName":"Lee","salary":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(router, http.MethodPost, "/api/teams/"+id+"/players", `{"firstName":"Bo","lastName":"Kim","salary":50}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(router, http.MethodGet, "/api/teams/"+id+"/players", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"firstName":"Ann","lastName":"Lee","salary":100},{"firstName":"Bo","lastName":"Kim","salary":50}]`, rec.Body.String())

	rec = doJSON(router, http.MethodDelete, "/api/teams/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Comets"`)

	rec = doJSON(router, http.MethodDelete, "/api/teams/"+id, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid teamId", decodeMessage(t, rec))
}

func TestAPI_SignupLogin(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	signup := `{"userName":"ada","password":"analytical","emailAddress":"ada@example.com"}`
	rec := doJSON(router, http.MethodPost, "/api/signup", signup)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "analytical")

	rec = doJSON(router, http.MethodPost, "/api/signup", signup)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Username is already in use", decodeMessage(t, rec))

	rec = doJSON(router, http.MethodPost, "/api/login", `{"userName":"ada","password":"analytical"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User logged in"}`, rec.Body.String())

	wrong := doJSON(router, http.MethodPost, "/api/login", `{"userName":"ada","password":"engine"}`)
	unknown := doJSON(router, http.MethodPost, "/api/login", `{"userName":"babbage","password":"engine"}`)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestAPI_ComposerRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodPost, "/api/composers", `{"firstName":"Johann","lastName":"Bach"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["_id"].(string)

	rec = doJSON(router, http.MethodGet, "/api/composers/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"_id":"`+id+`","firstName":"Johann","lastName":"Bach"}`, rec.Body.String())

	rec = doJSON(router, http.MethodPut, "/api/composers/"+id, `{"firstName":"Johann Sebastian","lastName":"Bach"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Johann Sebastian"`)

	rec = doJSON(router, http.MethodDelete, "/api/composers/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/composers", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_SignupTakenUserNameBeatsBadPayload(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodPost, "/api/signup", `{"userName":"ada","password":"analytical","emailAddress":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	longPassword := strings.Repeat("x", 73)
	for name, body := range map[string]string{
		"only userName": `{"userName":"ada"}`,
		"invalid email": `{"userName":"ada","password":"pw","emailAddress":"nope"}`,
		"long password": `{"userName":"ada","password":"` + longPassword + `","emailAddress":"ada@example.com"}`,
		"wrong type":    `{"userName":"ada","password":7,"emailAddress":"ada@example.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(router, http.MethodPost, "/api/signup", body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Username is already in use", decodeMessage(t, rec))
		})
	}

	rec = doJSON(router, http.MethodPost, "/api/signup", `{"userName":"babbage","emailAddress":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_StoresValuesAsSent(t *testing.T) {
	router, _ := newTestRouter(t, newMemoryDeps(t))

	rec := doJSON(router, http.MethodPost, "/api/composers", `{"firstName":" Johann ","lastName":"Bach "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["_id"].(string)

	rec = doJSON(router, http.MethodGet, "/api/composers/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"_id":"`+id+`","firstName":" Johann ","lastName":"Bach "}`, rec.Body.String())

	rec = doJSON(router, http.MethodPost, "/api/customers", `{"firstName":"Jo","lastName":"March","userName":" jm "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"userName":" jm "`)

	rec = doJSON(router, http.MethodGet, "/api/customers/%20jm%20/invoices", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doJSON(router, http.MethodGet, "/api/customers/jm/invoices", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/signup", `{"userName":" ada ","password":"pw","emailAddress":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"userName":" ada "`)

	rec = doJSON(router, http.MethodPost, "/api/login", `{"userName":" ada ","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
