package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Mock Bank Portal API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Mock Bank Portal API",
    "version": "1.0.0"
  },
  "paths": {
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/auth/login": {
      "post": {
        "summary": "Log in with card number and PIN",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "cardNumber",
                  "pin"
                ],
                "properties": {
                  "cardNumber": {
                    "type": "string"
                  },
                  "pin": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Malformed card number or PIN"
          },
          "401": {
            "description": "Authentication failed"
          }
        }
      }
    },
    "/auth/logout": {
      "post": {
        "summary": "End the current session",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "401": {
            "description": "Session not found"
          }
        }
      }
    },
    "/account": {
      "get": {
        "summary": "Get account summary and balance",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "401": {
            "description": "Session not found or expired"
          }
        }
      }
    },
    "/account/deposit": {
      "post": {
        "summary": "Deposit funds",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "amount"
                ],
                "properties": {
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Invalid amount"
          },
          "401": {
            "description": "Session not found or expired"
          }
        }
      }
    },
    "/account/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "amount"
                ],
                "properties": {
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Invalid amount"
          },
          "401": {
            "description": "Session not found or expired"
          },
          "422": {
            "description": "Insufficient funds"
          }
        }
      }
    },
    "/transactions": {
      "get": {
        "summary": "List transactions for a period",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "parameters": [
          {
            "name": "period",
            "in": "query",
            "required": false,
            "schema": {
              "type": "string",
              "enum": [
                "all",
                "today",
                "thisWeek",
                "thisMonth"
              ]
            }
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Invalid period"
          },
          "401": {
            "description": "Session not found or expired"
          }
        }
      }
    },
    "/transactions/export": {
      "get": {
        "summary": "Export transactions as CSV",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "parameters": [
          {
            "name": "period",
            "in": "query",
            "required": false,
            "schema": {
              "type": "string",
              "enum": [
                "all",
                "today",
                "thisWeek",
                "thisMonth"
              ]
            }
          },
          {
            "name": "header",
            "in": "query",
            "required": false,
            "schema": {
              "type": "boolean",
              "default": true
            }
          }
        ],
        "responses": {
          "200": {
            "description": "CSV statement",
            "content": {
              "text/csv": {
                "schema": {
                  "type": "string"
                }
              }
            }
          },
          "400": {
            "description": "Invalid period or header flag"
          },
          "401": {
            "description": "Session not found or expired"
          }
        }
      }
    },
    "/atms/nearby": {
      "get": {
        "summary": "List nearby ATMs",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "401": {
            "description": "Session not found or expired"
          },
          "504": {
            "description": "Lookup cancelled"
          }
        }
      }
    },
    "/send-money": {
      "post": {
        "summary": "Send money to another card",
        "security": [
          {
            "BasicAuth": [],
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "recipientCardNumber",
                  "amount"
                ],
                "properties": {
                  "recipientCardNumber": {
                    "type": "string"
                  },
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing recipient or invalid amount"
          },
          "401": {
            "description": "Session not found or expired"
          },
          "504": {
            "description": "Transfer cancelled"
          }
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      },
      "SessionToken": {
        "type": "apiKey",
        "in": "header",
        "name": "X-Session-Token"
      }
    }
  }
}`
