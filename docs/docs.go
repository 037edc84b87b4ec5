// Package docs registers the OpenAPI description served under /swagger.
// Keep it in sync with the swag annotations on the handlers (swag init -g cmd/app/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/players": {
            "post": {
                "tags": ["players"],
                "summary": "Create player",
                "parameters": [{"in": "body", "name": "request", "schema": {"$ref": "#/definitions/handler.CreatePlayerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/session.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/players/{playerID}": {
            "get": {
                "tags": ["players"],
                "summary": "Get player state",
                "parameters": [{"$ref": "#/parameters/playerID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.State"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["players"],
                "summary": "Delete player",
                "parameters": [{"$ref": "#/parameters/playerID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/players/{playerID}/credit": {
            "post": {
                "tags": ["players"],
                "summary": "Credit currency",
                "parameters": [
                    {"$ref": "#/parameters/playerID"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CreditRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/players/{playerID}/effects": {
            "post": {
                "tags": ["effects"],
                "summary": "Evaluate effects",
                "parameters": [
                    {"$ref": "#/parameters/playerID"},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/live.Snapshot"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/players/{playerID}/effarig/unlocks/{key}/purchase": {
            "post": {
                "tags": ["effarig"],
                "summary": "Purchase Effarig unlock",
                "parameters": [{"$ref": "#/parameters/playerID"}, {"$ref": "#/parameters/key"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.PurchaseResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/players/{playerID}/effarig/unlocks/{key}/grant": {
            "post": {
                "tags": ["effarig"],
                "summary": "Grant Effarig unlock",
                "parameters": [{"$ref": "#/parameters/playerID"}, {"$ref": "#/parameters/key"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.PurchaseResult"}}}
            }
        },
        "/players/{playerID}/effarig/run/start": {
            "post": {
                "tags": ["effarig"],
                "summary": "Start Effarig run",
                "parameters": [{"$ref": "#/parameters/playerID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.RunResult"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/players/{playerID}/effarig/run/stop": {
            "post": {
                "tags": ["effarig"],
                "summary": "Stop Effarig run",
                "parameters": [{"$ref": "#/parameters/playerID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.RunResult"}}}
            }
        },
        "/players/{playerID}/effarig/events": {
            "post": {
                "tags": ["effarig"],
                "summary": "Forward game event",
                "parameters": [
                    {"$ref": "#/parameters/playerID"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.GameEventRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GameEventResponse"}}}
            }
        },
        "/players/{playerID}/dilation/upgrades/{key}/purchase": {
            "post": {
                "tags": ["dilation"],
                "summary": "Purchase dilation upgrade",
                "parameters": [
                    {"$ref": "#/parameters/playerID"},
                    {"$ref": "#/parameters/key"},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/live.Snapshot"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.PurchaseResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/players/{playerID}/dilation/reset": {
            "post": {
                "tags": ["dilation"],
                "summary": "Reset dilation",
                "parameters": [{"$ref": "#/parameters/playerID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.State"}}}
            }
        }
    },
    "parameters": {
        "playerID": {"type": "string", "name": "playerID", "in": "path", "required": true},
        "key": {"type": "string", "name": "key", "in": "path", "required": true}
    },
    "definitions": {
        "handler.CreatePlayerRequest": {"type": "object", "properties": {"player_id": {"type": "string", "maxLength": 64}}},
        "handler.CreditRequest": {
            "type": "object",
            "required": ["amount", "currency"],
            "properties": {"amount": {"type": "string", "example": "1e400"}, "currency": {"type": "string", "example": "dilated_time"}}
        },
        "handler.GameEventRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "example": "big_crunch_before"}}},
        "handler.GameEventResponse": {"type": "object", "properties": {"reacted": {"type": "boolean"}}},
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.SuccessResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "live.Snapshot": {
            "type": "object",
            "properties": {
                "amounts": {"type": "object", "additionalProperties": {"type": "string"}},
                "multipliers": {"type": "object", "additionalProperties": {"type": "string"}},
                "scalars": {"type": "object", "additionalProperties": {"type": "number"}},
                "flags": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "now": {"type": "string", "format": "date-time"},
                "last_update": {"type": "string", "format": "date-time"}
            }
        },
        "session.PurchaseResult": {"type": "object", "properties": {"purchased": {"type": "boolean"}, "state": {"$ref": "#/definitions/session.State"}}},
        "session.RunResult": {"type": "object", "properties": {"changed": {"type": "boolean"}, "state": {"$ref": "#/definitions/session.State"}}},
        "session.State": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "wallet": {"type": "object", "additionalProperties": {"type": "string"}},
                "effarig": {"type": "object"},
                "dilation": {"type": "object"},
                "last_update": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Prestige API",
	Description:      "Prestige-layer progression: Effarig unlocks, dilation upgrades and effect evaluation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
