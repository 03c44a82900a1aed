package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK は成功レスポンスを返します
// データはエンベロープで包まずにそのまま出力します
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created は作成成功レスポンスを返します
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}
