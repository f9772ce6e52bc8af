package httpserver

import "github.com/gin-gonic/gin"

// Persons have no id routes, so no lookup can miss; the not-found message is unused.
const msgInvalidPerson = "Invalid personId"

func (h *handler) listPersons(c *gin.Context) {
	persons, err := h.deps.Persons.List(c.Request.Context())
	if err != nil {
		h.fail(c, msgInvalidPerson, err)
		return
	}
	h.ok(c, persons, "persons listed", "count", len(persons))
}

func (h *handler) createPerson(c *gin.Context) {
	var req personRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, msgInvalidPerson, err)
		return
	}
	person, err := h.deps.Persons.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidPerson, err)
		return
	}
	h.ok(c, person, "person created", "id", person.ID)
}
