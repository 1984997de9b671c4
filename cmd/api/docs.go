package main

// @title           StockPro API
// @version         1.0
// @description     API para gestão de estoque, vendas, compras, encomendas e dívidas de pequenos comércios

// @contact.name   Suporte StockPro

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
