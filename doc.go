// Package engage provides a client for the Engage (Silverpop) XML API,
// the XML-over-HTTP interface behind the marketing automation platform.
//
// The wire dialect is schema-less XML: requests and responses are generic
// element trees rather than fixed structs, sessions ride on a jsessionid
// URL matrix parameter, and expired sessions are recovered transparently.
//
// # Architecture
//
// The library is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  client/            One method per Engage operation     │
//	├─────────────────────────────────────────────────────────┤
//	│  xmlapi/            Session, submission, fault handling │
//	├─────────────────────────────────────────────────────────┤
//	│  xmlapi/transport/  HTTP POST plumbing                  │
//	├─────────────────────────────────────────────────────────┤
//	│  xmlmap/            Generic tree / XML codec            │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	cfg := xmlapi.Config{
//	    Endpoint: "https://api1.silverpop.com/XMLAPI",
//	    Username: "api_user",
//	    Password: "password",
//	}
//	c, err := client.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Logout(ctx)
//
//	recipient, err := c.SelectRecipientData(ctx, 85628, "user@example.com")
package engage
