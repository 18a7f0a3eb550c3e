package main

// @title           Gestão de Vendas API
// @version         1.0
// @description     API para gestão de representação comercial: clientes, produtos, marcas, pedidos e comissões

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
