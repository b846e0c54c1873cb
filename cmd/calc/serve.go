package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	calculator "github.com/abhisakh/Calculator"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Run an HTTP server exposing the calculator as a JSON API. All requests
share one session, so variables bound by one request are visible to the
next.

	POST /api/evaluate  {"expression": "5 + 3"}      -> {"result": "8"}
	POST /api/nl        {"expression": "2 times 6"}  -> {"result": "12"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRouter(calculator.NewSession())
			log.Printf("listening on %s", addr)
			return r.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

type evalRequest struct {
	Expression string `json:"expression" binding:"required"`
}

type evalResponse struct {
	Result string `json:"result"`
}

func newRouter(sess *calculator.Session) *gin.Engine {
	r := gin.Default()
	r.POST("/api/evaluate", evalHandler(sess, false))
	r.POST("/api/nl", evalHandler(sess, true))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// evalHandler evaluates an expression against the shared session. Calculator
// errors are results in their own right and report as 200 with the message in
// the result field; only a malformed request is an HTTP error.
func evalHandler(sess *calculator.Session, nl bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req evalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		expr := req.Expression
		if nl {
			expr = calculator.Normalize(expr)
		}
		res, err := sess.Evaluate(expr)
		if err != nil {
			c.JSON(http.StatusOK, evalResponse{Result: err.Error()})
			return
		}
		c.JSON(http.StatusOK, evalResponse{Result: res.String()})
	}
}
