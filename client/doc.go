// Package client exposes the Engage operations as one method per remote
// API call, built on the xmlapi submission protocol.
//
// A Client wraps anything that can submit requests; normally that is an
// *xmlapi.Client built by Connect:
//
//	c, err := client.Connect(ctx, xmlapi.Config{
//	    Endpoint: "https://api1.silverpop.com/XMLAPI",
//	    Username: user,
//	    Password: pass,
//	})
//	if err != nil {
//	    return err
//	}
//	defer c.Logout(ctx)
//
//	recipient, err := c.SelectRecipientData(ctx, listID, "user@example.com")
//
// Operations return the post-processed RESULT subtree, or a typed summary
// for jobs and exports. Session expiry is recovered transparently by the
// protocol layer.
package client
