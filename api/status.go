package api

//ServerStatus describes a running docserve instance
type ServerStatus struct {
	//Service is the human readable server title
	Service string `json:"service"`
	//Root is the absolute path of the served directory
	Root string `json:"root"`
	//Addr is the bound address in host:port form
	Addr string `json:"addr"`
	//Blog indicates a blog subdirectory exists under Root
	Blog bool `json:"blog"`
	//UptimeSeconds since the server started accepting requests
	UptimeSeconds int64 `json:"uptime_seconds"`
}
