package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": [
        "http"
    ],
    "paths": {
        "/setups": {
            "get": {
                "tags": [
                    "setups"
                ],
                "summary": "List setups",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "setups"
                ],
                "summary": "Create a setup",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateSetupRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/setups/{id}": {
            "get": {
                "tags": [
                    "setups"
                ],
                "summary": "Get setup by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Setup ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/setups/{id}/water-logs": {
            "post": {
                "tags": [
                    "setups"
                ],
                "summary": "Record a water reading",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Setup ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AddWaterLogRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants": {
            "get": {
                "tags": [
                    "plants"
                ],
                "summary": "List plants",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "setup_id",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "plants"
                ],
                "summary": "Create a plant",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreatePlantRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/projection": {
            "post": {
                "tags": [
                    "plants"
                ],
                "summary": "Project milestone dates",
                "produces": [
                    "application/json"
                ],
                "description": "Germination, flowering and harvest dates counted from today. available=false when no projection could be made.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ProjectionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/{id}": {
            "get": {
                "tags": [
                    "plants"
                ],
                "summary": "Get plant by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Plant ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/{id}/timeline": {
            "get": {
                "tags": [
                    "plants"
                ],
                "summary": "Plant timeline",
                "produces": [
                    "application/json"
                ],
                "description": "Milestones with actual/projected source and completion fraction",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Plant ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/{id}/status": {
            "put": {
                "tags": [
                    "plants"
                ],
                "summary": "Update plant status",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Plant ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdatePlantStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/{id}/milestones": {
            "put": {
                "tags": [
                    "plants"
                ],
                "summary": "Record observed milestones",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Plant ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RecordMilestoneRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/plants/{id}/harvests": {
            "post": {
                "tags": [
                    "plants"
                ],
                "summary": "Record a harvest",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Plant ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AddHarvestRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/equipment": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "List equipment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "inventory"
                ],
                "summary": "Register equipment",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateEquipmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ingredients": {
            "get": {
                "tags": [
                    "inventory"
                ],
                "summary": "List ingredients",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "inventory"
                ],
                "summary": "Register an ingredient",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateIngredientRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": [
                    "tasks"
                ],
                "summary": "List tasks",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Create a task",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/tasks/{id}/toggle": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Toggle task completion",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/advisor/diagnose": {
            "post": {
                "tags": [
                    "advisor"
                ],
                "summary": "Diagnose a plant problem",
                "produces": [
                    "application/json"
                ],
                "description": "Symptoms and/or a base64 photo in, Markdown report out",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/DiagnoseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/advisor/guide": {
            "post": {
                "tags": [
                    "advisor"
                ],
                "summary": "Beginner guide",
                "produces": [
                    "application/json"
                ],
                "description": "Web-grounded Markdown guide with a Sources list",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GuideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/advisor/tip": {
            "get": {
                "tags": [
                    "advisor"
                ],
                "summary": "Daily tip",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/backup": {
            "get": {
                "tags": [
                    "backup"
                ],
                "summary": "Download a backup",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "backup"
                ],
                "summary": "Store a backup in object storage",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "503": {
                        "description": "Backup storage not configured"
                    }
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "CreateSetupRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Kitchen DWC"
                },
                "system_type": {
                    "type": "string",
                    "enum": [
                        "Hydroponic",
                        "Aquaponic",
                        "Aeroponic",
                        "Kratky",
                        "DWC",
                        "NFT"
                    ]
                },
                "start_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "reservoir_size": {
                    "type": "string",
                    "example": "20L"
                },
                "location": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "cost": {
                    "type": "number"
                }
            },
            "required": [
                "name",
                "system_type"
            ]
        },
        "AddWaterLogRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "ph": {
                    "type": "number",
                    "example": 6.0
                },
                "ec": {
                    "type": "number",
                    "example": 1.4
                },
                "temperature": {
                    "type": "number",
                    "example": 20
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "CreatePlantRequest": {
            "type": "object",
            "properties": {
                "setup_id": {
                    "type": "string"
                },
                "species": {
                    "type": "string",
                    "example": "Basil"
                },
                "variety": {
                    "type": "string",
                    "example": "Genovese"
                },
                "planted_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "projected_germination_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "projected_flowering_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "projected_harvest_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "notes": {
                    "type": "string"
                },
                "cost": {
                    "type": "number"
                },
                "project": {
                    "type": "boolean",
                    "description": "Fill projected dates from a fresh projection when available"
                }
            },
            "required": [
                "species"
            ]
        },
        "ProjectionRequest": {
            "type": "object",
            "properties": {
                "species": {
                    "type": "string",
                    "example": "Basil"
                },
                "variety": {
                    "type": "string"
                },
                "system_type": {
                    "type": "string",
                    "example": "NFT"
                }
            },
            "required": [
                "species"
            ]
        },
        "UpdatePlantStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "Healthy",
                        "Needs Attention",
                        "Struggling",
                        "Harvested"
                    ]
                }
            },
            "required": [
                "status"
            ]
        },
        "RecordMilestoneRequest": {
            "type": "object",
            "properties": {
                "germinated_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "flowered_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                }
            }
        },
        "AddHarvestRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "quantity": {
                    "type": "number",
                    "example": 120
                },
                "unit": {
                    "type": "string",
                    "example": "g"
                }
            },
            "required": [
                "quantity",
                "unit"
            ]
        },
        "CreateEquipmentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "LED panel"
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "Lighting",
                        "Pump",
                        "Monitoring",
                        "Structural",
                        "Other"
                    ]
                },
                "purchase_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Active",
                        "Backup",
                        "Broken"
                    ]
                },
                "notes": {
                    "type": "string"
                },
                "cost": {
                    "type": "number"
                },
                "setup_id": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "category"
            ]
        },
        "CreateIngredientRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "pH Down"
                },
                "brand": {
                    "type": "string"
                },
                "quantity": {
                    "type": "number",
                    "example": 500
                },
                "unit": {
                    "type": "string",
                    "example": "ml"
                },
                "purpose": {
                    "type": "string",
                    "enum": [
                        "Nutrient",
                        "pH Adjuster",
                        "Additive",
                        "Water Treatment"
                    ]
                },
                "notes": {
                    "type": "string"
                },
                "cost": {
                    "type": "number"
                }
            },
            "required": [
                "name",
                "purpose"
            ]
        },
        "CreateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string",
                    "example": "Change reservoir water"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-02-01"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "Low",
                        "Medium",
                        "High"
                    ]
                }
            },
            "required": [
                "title"
            ]
        },
        "DiagnoseRequest": {
            "type": "object",
            "properties": {
                "symptoms": {
                    "type": "string",
                    "example": "Yellowing lower leaves"
                },
                "image_base64": {
                    "type": "string"
                },
                "image_mime_type": {
                    "type": "string",
                    "example": "image/jpeg"
                }
            }
        },
        "GuideRequest": {
            "type": "object",
            "properties": {
                "topic": {
                    "type": "string",
                    "example": "nutrient solutions"
                }
            },
            "required": [
                "topic"
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "HydroTrack API",
	Description:      "Hydroponic garden tracker: setups, plants, lifecycle timelines, inventory and AI advice",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
