// Package docs holds the Swagger document served at /docs, laid out the way
// swag init writes it. Keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Ziyou"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/compare": {
            "get": {
                "description": "Compares up to four catalog games side by side and marks the best value per metric. Without ids the wishlist is compared.",
                "produces": ["application/json"],
                "tags": ["compare"],
                "summary": "Compare games",
                "parameters": [
                    {"type": "string", "description": "Comma-separated game ids (first four are used)", "name": "ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CompareResponse"}}
                }
            }
        },
        "/games": {
            "get": {
                "description": "Returns every game of the bundled catalog in catalog order. Supports ETag revalidation.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List catalog games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/game.Game"}}},
                    "304": {"description": "Not modified"}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "description": "Returns one game by id. Supports ETag revalidation.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a catalog game",
                "parameters": [
                    {"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.Game"}},
                    "304": {"description": "Not modified"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/recommend": {
            "post": {
                "description": "Sends the player profile to the recommendation service and stores the returned games as the session's results. Only one submission per session may be in flight.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Submit the survey",
                "parameters": [
                    {"description": "Player profile", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/profile.Profile"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RecommendResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/results": {
            "get": {
                "description": "Filters the session's latest recommendations (or the catalog when there are none) and returns a random sample. The sample is stable until the filters change or a reshuffle is requested.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Results view",
                "parameters": [
                    {"type": "string", "description": "Comma-separated genres", "name": "genres", "in": "query"},
                    {"type": "string", "description": "Comma-separated devices", "name": "devices", "in": "query"},
                    {"type": "string", "description": "Comma-separated difficulties", "name": "difficulty", "in": "query"},
                    {"type": "integer", "description": "Sample size (default DISPLAY_COUNT)", "name": "count", "in": "query"},
                    {"type": "boolean", "description": "Re-roll the sample", "name": "shuffle", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ResultsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/results/reshuffle": {
            "post": {
                "description": "Draws a new random sample from the currently filtered list.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Reshuffle results",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ResultsResponse"}}
                }
            }
        },
        "/survey": {
            "get": {
                "description": "Returns the current step, answers, loading flag and last error of the session's survey.",
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Survey state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}}
                }
            },
            "patch": {
                "description": "Updates the fields present in the body and leaves the rest alone. Refused while a submission is in flight.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Edit survey answers",
                "parameters": [
                    {"description": "Answers to change", "name": "answers", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SurveyAnswers"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/survey/back": {
            "post": {
                "description": "Moves one step back. Does nothing on the first step or while a submission is in flight.",
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Previous survey step",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}}
                }
            }
        },
        "/survey/next": {
            "post": {
                "description": "Moves to the next step when the current one is answered. On the last step the profile is submitted and the returned games become the session's results.",
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Next survey step",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/survey/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Cancel submission",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}}
                }
            }
        },
        "/survey/error": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["survey"],
                "summary": "Dismiss survey error",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/survey.State"}}
                }
            }
        },
        "/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Current theme",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ThemeResponse"}}
                }
            }
        },
        "/theme/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Toggle theme",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ThemeResponse"}}
                }
            }
        },
        "/theme/{name}": {
            "put": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Set theme",
                "parameters": [
                    {"enum": ["cyber", "dopamine"], "type": "string", "description": "Theme name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ThemeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/wishlist": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wishlist"],
                "summary": "Wishlist",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.WishlistResponse"}}
                }
            }
        },
        "/wishlist/{id}": {
            "put": {
                "produces": ["application/json"],
                "tags": ["wishlist"],
                "summary": "Add to wishlist",
                "parameters": [
                    {"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MembershipResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["wishlist"],
                "summary": "Remove from wishlist",
                "parameters": [
                    {"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MembershipResponse"}}
                }
            }
        },
        "/wishlist/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["wishlist"],
                "summary": "Toggle wishlist membership",
                "parameters": [
                    {"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MembershipResponse"}}
                }
            }
        }
    },
    "definitions": {
        "game.BuyLink": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "platform": {"type": "string"},
                "price": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "game.Game": {
            "type": "object",
            "properties": {
                "buyLinks": {"type": "array", "items": {"$ref": "#/definitions/game.BuyLink"}},
                "cover": {"type": "string"},
                "description": {"type": "string"},
                "developer": {"type": "string"},
                "devices": {"type": "array", "items": {"type": "string"}},
                "difficulty": {"type": "string", "enum": ["easy", "medium", "hard", "very_hard"]},
                "genres": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "nameEn": {"type": "string"},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "playtime": {"type": "string"},
                "publisher": {"type": "string"},
                "recommendReason": {"type": "string"},
                "releaseYear": {"type": "integer"},
                "scores": {"$ref": "#/definitions/game.Scores"},
                "screenshots": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "videoUrl": {"type": "string"}
            }
        },
        "game.Scores": {
            "type": "object",
            "properties": {
                "ign": {"type": "number"},
                "metacritic": {"type": "number"},
                "taptap": {"type": "number"}
            }
        },
        "handler.CompareResponse": {
            "type": "object",
            "properties": {
                "empty": {"type": "boolean"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/game.Game"}},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/compare.Row"}}
            }
        },
        "compare.Row": {
            "type": "object",
            "properties": {
                "highlight": {"type": "integer"},
                "key": {"type": "string"},
                "label": {"type": "string"},
                "values": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.MembershipResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "id": {"type": "string"},
                "wishlisted": {"type": "boolean"}
            }
        },
        "handler.SurveyAnswers": {
            "type": "object",
            "properties": {
                "experienceLevel": {"type": "string"},
                "weeklyHours": {"type": "integer"},
                "purposes": {"type": "array", "items": {"type": "string"}},
                "genrePreferences": {"type": "array", "items": {"type": "string"}},
                "devices": {"type": "array", "items": {"type": "string"}},
                "platformPreferences": {"type": "array", "items": {"type": "string"}},
                "agePreference": {"type": "string"},
                "favoriteGames": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.RecommendResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/game.Game"}}
            }
        },
        "handler.ResultsResponse": {
            "type": "object",
            "properties": {
                "available": {"$ref": "#/definitions/filter.Options"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/game.Game"}},
                "key": {"type": "integer"},
                "selection": {"$ref": "#/definitions/filter.Options"},
                "source": {"type": "string", "enum": ["recommendations", "catalog"]},
                "total": {"type": "integer"},
                "wishlistCount": {"type": "integer"}
            }
        },
        "filter.Options": {
            "type": "object",
            "properties": {
                "devices": {"type": "array", "items": {"type": "string"}},
                "difficulties": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ThemeResponse": {
            "type": "object",
            "properties": {
                "theme": {"type": "string", "enum": ["cyber", "dopamine"]}
            }
        },
        "handler.WishlistResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/game.Game"}},
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "profile.Profile": {
            "type": "object",
            "properties": {
                "agePreference": {"type": "string", "enum": ["classic", "new", "both"]},
                "devices": {"type": "array", "items": {"type": "string"}},
                "experienceLevel": {"type": "string", "enum": ["beginner", "casual", "moderate", "hardcore"]},
                "favoriteGames": {"type": "array", "maxItems": 5, "items": {"type": "string"}},
                "genrePreferences": {"type": "array", "items": {"type": "string"}},
                "platformPreferences": {"type": "array", "items": {"type": "string"}},
                "purposes": {"type": "array", "items": {"type": "string"}},
                "weeklyHours": {"type": "integer", "minimum": 1, "maximum": 40}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "detail": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        },
        "survey.State": {
            "type": "object",
            "properties": {
                "canProceed": {"type": "boolean"},
                "done": {"type": "boolean"},
                "error": {"type": "string"},
                "loading": {"type": "boolean"},
                "profile": {"$ref": "#/definitions/profile.Profile"},
                "step": {"type": "integer"},
                "steps": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Ziyou Browse API",
	Description:      "Local browse server for game recommendations: survey submission, filtered and shuffled results, wishlist, side-by-side comparison and theme.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
